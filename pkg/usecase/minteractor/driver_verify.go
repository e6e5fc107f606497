// 指示: miu200521358
package minteractor

import (
	"math"
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/expr"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

const driverValueTolerance = 1e-6

// CorrectiveDriverSample は補正ドライバー1件の静止姿勢での値を表す。
type CorrectiveDriverSample struct {
	Mesh   string
	Driver *model.Driver
	Value  float64
}

// DriverCheckResult は付け替え後の補正ドライバー検証結果を表す。
type DriverCheckResult struct {
	Checked  int
	Diverged int
}

// SampleCorrectiveDrivers は補正ドライバーを全変数 0 の静止姿勢で評価して記録する。
// 評価できない式は記録しない。
func SampleCorrectiveDrivers(meshes []*model.Mesh) []CorrectiveDriverSample {
	samples := make([]CorrectiveDriverSample, 0)
	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		for _, shapeKey := range mesh.ShapeKeys {
			driver := shapeKey.Driver
			if driver == nil || !strings.Contains(driver.DataPath, correctiveDataPathMarker) {
				continue
			}
			value, err := expr.Evaluate(driver.Expression, restValues(driver))
			if err != nil {
				continue
			}
			samples = append(samples, CorrectiveDriverSample{Mesh: mesh.Name, Driver: driver, Value: value})
		}
	}
	return samples
}

// VerifyCorrectiveDrivers は記録済みの補正ドライバーを再評価し、値が変わったものを警告する。
func VerifyCorrectiveDrivers(samples []CorrectiveDriverSample, reporter moutput.IReporter) DriverCheckResult {
	result := DriverCheckResult{}
	for _, sample := range samples {
		result.Checked++
		subject := sample.Mesh + ":" + sample.Driver.DataPath
		value, err := expr.Evaluate(sample.Driver.Expression, restValues(sample.Driver))
		if err != nil {
			result.Diverged++
			report(reporter, newWarning(model.WarningDriverValueDiverged, subject,
				"付け替え後のドライバー式を評価できません: %v", err))
			continue
		}
		if math.Abs(value-sample.Value) > driverValueTolerance {
			result.Diverged++
			report(reporter, newWarning(model.WarningDriverValueDiverged, subject,
				"静止姿勢のドライバー値が変わりました: %.6f -> %.6f", sample.Value, value))
		}
	}
	return result
}

// restValues は全変数を 0 とした評価用の値を返す。
func restValues(driver *model.Driver) map[string]float64 {
	values := make(map[string]float64, len(driver.Variables))
	for _, variable := range driver.Variables {
		values[variable.Name] = 0
	}
	return values
}

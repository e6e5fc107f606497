// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/expr"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// forearmRangeShim はDazから取り込まれる前腕補正シェイプキーの既知の範囲誤りを直す置換を表す。
type forearmRangeShim struct {
	signature string
	before    string
	after     string
}

// forearmRangeShims は互換パッチの一覧。データパスに signature を含むドライバーのみ対象とする。
var forearmRangeShims = []forearmRangeShim{
	{signature: "pJCMForeArmFwd_75_135", before: "0.0,2.356", after: "1.309,2.356"},
}

// DriverCleanupResult はドライバー掃除の結果を表す。
type DriverCleanupResult struct {
	RemovedVariables int
	PatchedDrivers   int
}

// CleanupDrivers は全シェイプキードライバーから式で参照されない変数を取り除き、互換パッチを適用する。
func CleanupDrivers(meshes []*model.Mesh, reporter moutput.IReporter) DriverCleanupResult {
	result := DriverCleanupResult{}
	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		for _, shapeKey := range mesh.ShapeKeys {
			driver := shapeKey.Driver
			if driver == nil {
				continue
			}
			if applyForearmRangeShim(driver) {
				result.PatchedDrivers++
			}
			result.RemovedVariables += removeUnreferencedVariables(mesh.Name, driver, reporter)
		}
	}
	return result
}

// removeUnreferencedVariables は式に現れない変数を削除し、削除数を返す。
func removeUnreferencedVariables(meshName string, driver *model.Driver, reporter moutput.IReporter) int {
	names, parsed := expr.ReferencedNames(driver.Expression)
	if !parsed {
		report(reporter, newInfo(model.WarningDriverExpressionUnparsed, meshName+":"+driver.DataPath,
			"ドライバー式を解析できないため字句走査で参照変数を判定します: %s", driver.Expression))
	}
	referenced := make(map[string]struct{}, len(names))
	for _, name := range names {
		referenced[name] = struct{}{}
	}

	unused := make([]string, 0)
	for _, variable := range driver.Variables {
		if _, ok := referenced[variable.Name]; !ok {
			unused = append(unused, variable.Name)
		}
	}
	for _, name := range unused {
		driver.RemoveVariable(name)
	}
	return len(unused)
}

// applyForearmRangeShim は既知の範囲誤りを持つ前腕補正ドライバーの式を書き換える。
func applyForearmRangeShim(driver *model.Driver) bool {
	patched := false
	for _, shim := range forearmRangeShims {
		if !strings.Contains(driver.DataPath, shim.signature) {
			continue
		}
		if !strings.Contains(driver.Expression, shim.before) {
			continue
		}
		driver.Expression = strings.ReplaceAll(driver.Expression, shim.before, shim.after)
		patched = true
	}
	return patched
}

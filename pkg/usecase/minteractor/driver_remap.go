// 指示: miu200521358
package minteractor

import (
	"strings"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/expr"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// correctiveDataPathMarker は補正シェイプキーのデータパスに含まれる識別子。
const correctiveDataPathMarker = "pJCM"

// DriverRetargetResult はドライバー再設定の結果を表す。
type DriverRetargetResult struct {
	Retargeted int
	Added      int
	Skipped    int
}

// RetargetCorrectiveDrivers は補正シェイプキーのドライバー変数をARPボーンへ付け替え、
// ボーン軸の違いに合わせて回転チャンネルと式を補正する。
func RetargetCorrectiveDrivers(
	meshes []*model.Mesh,
	target *model.Skeleton,
	source *model.Skeleton,
	tables mapping.Tables,
	reporter moutput.IReporter,
) DriverRetargetResult {
	result := DriverRetargetResult{}
	if target == nil || source == nil || tables.Correspondence == nil {
		return result
	}
	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		for _, shapeKey := range mesh.ShapeKeys {
			driver := shapeKey.Driver
			if driver == nil || !strings.Contains(driver.DataPath, correctiveDataPathMarker) {
				continue
			}
			// 追加変数は走査対象に含めない
			variables := append([]*model.DriverVariable(nil), driver.Variables...)
			for _, variable := range variables {
				outcome := retargetVariable(driver, variable, target, source, tables, reporter)
				switch outcome.status {
				case retargetDone:
					result.Retargeted++
					result.Added += outcome.added
				case retargetSkipped:
					result.Skipped++
				}
			}
		}
	}
	return result
}

// retargetStatus は変数1件の処理結果を表す。
type retargetStatus int

const (
	retargetIgnored retargetStatus = iota
	retargetDone
	retargetSkipped
)

// retargetOutcome は変数1件の処理結果と追加変数数を表す。
type retargetOutcome struct {
	status retargetStatus
	added  int
}

// retargetVariable はドライバー変数1件を付け替える。
func retargetVariable(
	driver *model.Driver,
	variable *model.DriverVariable,
	target *model.Skeleton,
	source *model.Skeleton,
	tables mapping.Tables,
	reporter moutput.IReporter,
) retargetOutcome {
	if variable.Type != model.VAR_TRANSFORMS {
		return retargetOutcome{status: retargetIgnored}
	}
	primary := &variable.Targets[0]
	// 付け替え済み、または別オブジェクトを参照する変数はそのまま
	if primary.ID == target.Name || (primary.ID != "" && primary.ID != source.Name) {
		return retargetOutcome{status: retargetIgnored}
	}

	subject := driver.DataPath + ":" + variable.Name
	mapped, ok := tables.Correspondence.Target(primary.BoneTarget)
	if !ok {
		report(reporter, newWarning(model.WarningDriverVariableUnresolved, subject,
			"ドライバー変数 %s の参照ボーン %s に対応するARPボーンがありません", variable.Name, primary.BoneTarget))
		return retargetOutcome{status: retargetSkipped}
	}
	correction := tables.RollCorrections.Lookup(mapped)
	boneName := mapped
	if correction.Override != "" {
		boneName = correction.Override
	}
	if !target.Contains(boneName) {
		report(reporter, newWarning(model.WarningTargetBoneMissing, subject,
			"ドライバー変数 %s の付け替え先ボーン %s がARPリグにありません", variable.Name, boneName))
		return retargetOutcome{status: retargetSkipped}
	}

	primary.ID = target.Name
	primary.BoneTarget = boneName

	outcome := retargetOutcome{status: retargetDone}
	switch correction.Kind {
	case mapping.RollExtraBones:
		outcome.added = addExtraDrivingBones(driver, variable, target, correction.Extra, reporter)
	case mapping.RollDifference:
		variable.Type = model.VAR_ROTATION_DIFF
		variable.Targets[1] = model.DriverTarget{ID: target.Name, BoneTarget: correction.Second}
		if !target.Contains(correction.Second) {
			report(reporter, newWarning(model.WarningTargetBoneMissing, subject,
				"回転差分の比較ボーン %s がARPリグにありません", correction.Second))
		}
		if correction.Negate {
			driver.Expression = expr.NegateReference(driver.Expression, variable.Name)
		}
	case mapping.Roll90, mapping.Roll180, mapping.Roll270:
		degrees, _ := correction.Kind.Degrees()
		axis := primary.TransformType.RotationAxis()
		if axis < 0 {
			break
		}
		remapped, negate := rotateAxisAroundTwist(axis, degrees)
		primary.TransformType = model.RotationTransformType(remapped)
		if negate {
			driver.Expression = expr.NegateReference(driver.Expression, variable.Name)
		}
	}
	return outcome
}

// addExtraDrivingBones は変数を追加ボーン分複製し、式中の参照を合計に置き換える。
func addExtraDrivingBones(
	driver *model.Driver,
	variable *model.DriverVariable,
	target *model.Skeleton,
	extras []string,
	reporter moutput.IReporter,
) int {
	added := make([]string, 0, len(extras))
	for _, extra := range extras {
		if !target.Contains(extra) {
			report(reporter, newWarning(model.WarningTargetBoneMissing, extra,
				"追加駆動ボーン %s がARPリグにありません", extra))
			continue
		}
		cloned, err := variable.Clone()
		if err != nil {
			report(reporter, newWarning(model.WarningDriverVariableUnresolved, variable.Name,
				"ドライバー変数の複製に失敗しました: %v", err))
			continue
		}
		cloned.Name = driver.UniqueVariableName(variable.Name)
		cloned.Targets[0].BoneTarget = extra
		if err := driver.AddVariable(cloned); err != nil {
			report(reporter, newWarning(model.WarningDriverVariableUnresolved, variable.Name,
				"ドライバー変数の追加に失敗しました: %v", err))
			continue
		}
		added = append(added, cloned.Name)
	}
	driver.Expression = expr.SumReference(driver.Expression, variable.Name, added)
	return len(added)
}

// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// weightMergeModifierPrefix はウェイト合算用の一時モディファイア名の接頭辞。
const weightMergeModifierPrefix = "daz2arp_merge_"

// applyMergeModifier は一時モディファイアをメッシュへ焼き込む。
var applyMergeModifier = func(mesh *model.Mesh, name string) error {
	return mesh.ApplyModifier(name)
}

// VertexGroupRemapResult は頂点グループ付け替えの結果を表す。
type VertexGroupRemapResult struct {
	Renamed []string
	Merged  []string
	Missing int
}

// RemapVertexGroups は対応表に従って頂点グループ名をARPボーン名へ変更してロックし、
// ARPに存在しないボーンのウェイトを隣接グループへ合算する。
// 変更済みのグループは再変更せず、グループ単位の失敗は警告として報告する。
func RemapVertexGroups(
	mesh *model.Mesh,
	correspondence *mapping.Correspondence,
	merges []mapping.WeightMerge,
	reporter moutput.IReporter,
) VertexGroupRemapResult {
	result := VertexGroupRemapResult{}
	if mesh == nil || correspondence == nil {
		return result
	}

	for _, entry := range correspondence.Entries() {
		subject := mesh.Name + ":" + entry.Source
		sourceGroup, sourceErr := mesh.VertexGroup(entry.Source)
		targetGroup, targetErr := mesh.VertexGroup(entry.Target)
		switch {
		case sourceErr == nil && targetErr == nil:
			report(reporter, newWarning(model.WarningVertexGroupConflict, subject,
				"変更先の頂点グループ %s が既に存在するため %s を変更しません", entry.Target, entry.Source))
			continue
		case sourceErr != nil && targetErr == nil:
			targetGroup.LockWeight = true
			continue
		case sourceErr != nil:
			result.Missing++
			report(reporter, newWarning(model.WarningVertexGroupMissing, subject,
				"頂点グループが見つかりません: %s", entry.Source))
			continue
		}
		if err := mesh.RenameVertexGroup(entry.Source, entry.Target); err != nil {
			report(reporter, newWarning(model.WarningVertexGroupConflict, subject,
				"頂点グループ名の変更に失敗しました: %v", err))
			continue
		}
		sourceGroup.LockWeight = true
		result.Renamed = append(result.Renamed, entry.Target)
	}

	for _, merge := range merges {
		if mergeWeights(mesh, merge, reporter) {
			result.Merged = append(result.Merged, merge.Target)
		}
	}
	return result
}

// mergeWeights は衛星グループのウェイトを主グループへ加算合成して焼き込み、衛星グループを削除する。
// 合成に失敗しても一時モディファイアと衛星グループは残さない。
func mergeWeights(mesh *model.Mesh, merge mapping.WeightMerge, reporter moutput.IReporter) bool {
	subject := mesh.Name + ":" + merge.Satellite
	if !mesh.HasVertexGroup(merge.Satellite) {
		report(reporter, newInfo(model.WarningVertexGroupMissing, subject,
			"合算元の頂点グループがないため合算をスキップします: %s", merge.Satellite))
		return false
	}
	defer func() {
		if err := mesh.RemoveVertexGroup(merge.Satellite); err != nil {
			report(reporter, newWarning(model.WarningWeightMergeFailed, subject,
				"合算元の頂点グループ削除に失敗しました: %v", err))
		}
	}()

	if !mesh.HasVertexGroup(merge.Target) {
		group := model.NewVertexGroup(merge.Target)
		group.LockWeight = true
		if err := mesh.AddVertexGroup(group); err != nil {
			report(reporter, newWarning(model.WarningWeightMergeFailed, subject,
				"合算先の頂点グループ作成に失敗しました: %v", err))
			return false
		}
	}

	modifier := mesh.AddModifier(&model.Modifier{
		Name:         weightMergeModifierPrefix + merge.Satellite,
		Type:         model.MODIFIER_VERTEX_WEIGHT_MIX,
		VertexGroupA: merge.Target,
		VertexGroupB: merge.Satellite,
		MixMode:      model.MIX_MODE_ADD,
		MixSet:       model.MIX_SET_ALL,
	})
	if err := mesh.MoveModifier(modifier.Name, 0); err != nil {
		report(reporter, newWarning(model.WarningWeightMergeFailed, subject,
			"ウェイト合算モディファイアを先頭へ移動できません: %v", err))
		discardModifier(mesh, modifier.Name, subject, reporter)
		return false
	}
	if err := applyMergeModifier(mesh, modifier.Name); err != nil {
		report(reporter, newWarning(model.WarningWeightMergeFailed, subject,
			"%s を %s へ合算できませんでした: %v", merge.Satellite, merge.Target, err))
		discardModifier(mesh, modifier.Name, subject, reporter)
		return false
	}
	return true
}

// discardModifier は適用できなかった一時モディファイアを取り除く。
func discardModifier(mesh *model.Mesh, name string, subject string, reporter moutput.IReporter) {
	if err := mesh.RemoveModifier(name); err != nil {
		report(reporter, newWarning(model.WarningWeightMergeFailed, subject,
			"一時モディファイア %s を削除できませんでした: %v", name, err))
	}
}

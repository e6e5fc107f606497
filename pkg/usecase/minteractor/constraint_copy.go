// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"github.com/miu200521358/mu_daz2arp/pkg/usecase/port/moutput"
)

// LimitCopyResult は回転制限コピーの結果を表す。
type LimitCopyResult struct {
	// Copied はARPボーン名ごとのコピーした制限数を表す。
	Copied map[string]int
	Order  []string
}

// CopyRotationLimits はDazボーンの回転制限をARPポーズボーンへ写す。
// 元ボーンは上書き表、なければ同名で解決し、どちらもなければ何もしない。
// 基準フレーム指定がある場合も制限値は同じ空間のまま写し、所有者空間は変更しない。
func CopyRotationLimits(
	target *model.Skeleton,
	source *model.Skeleton,
	bases mapping.LimitBases,
	reporter moutput.IReporter,
) LimitCopyResult {
	result := LimitCopyResult{Copied: map[string]int{}}
	if target == nil || source == nil {
		return result
	}
	for _, bone := range target.Bones() {
		sourceName := bone.Name
		frame := ""
		if base, ok := bases.Resolve(bone.Name); ok {
			sourceName = base.Source
			frame = base.Frame
		}
		sourceBone, err := source.Get(sourceName)
		if err != nil {
			continue
		}

		count := 0
		for _, constraint := range sourceBone.Constraints {
			if !constraint.IsRotationLimit() {
				continue
			}
			applyRotationLimit(bone, constraint, frame == "")
			count++
		}
		if count == 0 {
			continue
		}
		if frame != "" {
			report(reporter, newInfo(model.WarningLimitFrameUnsupported, bone.Name,
				"%s の回転制限は %s 基準への再投影を行わず同じ空間でコピーしました", bone.Name, frame))
		}
		result.Copied[bone.Name] = count
		result.Order = append(result.Order, bone.Name)
	}
	return result
}

// applyRotationLimit は同名の回転制限があれば上書きし、なければ追加する。
func applyRotationLimit(bone *model.Bone, source *model.Constraint, copyOwnerSpace bool) {
	var constraint *model.Constraint
	for _, existing := range bone.Constraints {
		if existing.IsRotationLimit() && existing.Name == source.Name {
			constraint = existing
			break
		}
	}
	if constraint == nil {
		constraint = model.NewRotationLimitConstraint(source.Name)
		bone.Constraints = append(bone.Constraints, constraint)
	}

	constraint.Limit.Axes = source.Limit.Axes
	constraint.Limit.EulerOrder = source.Limit.EulerOrder
	constraint.Limit.UseTransformLimit = source.Limit.UseTransformLimit
	if copyOwnerSpace {
		constraint.Limit.OwnerSpace = source.Limit.OwnerSpace
	}
}

// 指示: miu200521358
package minteractor

import (
	"math"

	"github.com/miu200521358/mu_daz2arp/pkg/domain/mapping"
	"github.com/miu200521358/mu_daz2arp/pkg/domain/model"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	heelBackOffset  = 0.05
	bankOuterOffset = 0.005
	bankInnerOffset = 0.01
)

// SnapReferenceBones はスナップ指定を表の順に適用し、ARP参照ボーンをDaz骨格へ合わせる。
// Daz骨格は変更しない。ルール単位の失敗は警告として返し、処理は継続する。
func SnapReferenceBones(target *model.Skeleton, source *model.Skeleton, rules []mapping.SnapRule) []Warning {
	warnings := make([]Warning, 0)
	if target == nil || source == nil {
		return warnings
	}
	for _, rule := range rules {
		bone, err := target.Get(rule.Target)
		if err != nil {
			warnings = append(warnings, newWarning(model.WarningTargetBoneMissing, rule.Target,
				"ARP参照ボーンが見つからないためスナップをスキップします: %s", rule.Target))
			continue
		}
		sourceBone, err := source.Get(rule.Source)
		if err != nil {
			warnings = append(warnings, newWarning(model.WarningSourceBoneMissing, rule.Source,
				"Dazボーンが見つからないため %s のスナップをスキップします: %s", rule.Target, rule.Source))
			continue
		}
		warnings = append(warnings, snapBone(target, source, bone, sourceBone, rule)...)
	}
	return warnings
}

// snapBone はスナップ指定1件を適用する。
func snapBone(target *model.Skeleton, source *model.Skeleton, bone *model.Bone, sourceBone *model.Bone, rule mapping.SnapRule) []Warning {
	if rule.Disconnect {
		bone.Connected = false
	}
	if rule.Special == mapping.SpecialBreast {
		snapBreast(target, bone, sourceBone)
		return nil
	}

	bone.Roll = sourceBone.Roll
	switch {
	case rule.Flipped:
		target.MoveHead(bone, sourceBone.Tail)
		target.MoveTail(bone, sourceBone.Head)
		bone.Roll = model.NormalizedRoll(sourceBone.Roll + math.Pi)
	case rule.Special == mapping.SpecialFootProximal:
		// 元ボーンの手前側へ同じ長さだけ延長した位置に置く
		head := r3.Sub(r3.Scale(2, sourceBone.Head), sourceBone.Tail)
		target.MoveHead(bone, head)
		target.MoveTail(bone, sourceBone.Head)
	default:
		if rule.Anchor.HasHead() {
			target.MoveHead(bone, sourceBone.Head)
		}
		if rule.Anchor.HasTail() {
			target.MoveTail(bone, sourceBone.Tail)
		}
	}

	switch rule.Special {
	case mapping.SpecialShin:
		return snapShin(target, source, bone, rule)
	case mapping.SpecialAnkle:
		return snapAnkle(target, source, bone, rule)
	}
	return nil
}

// snapBreast は参照ボーンの向きと長さを保ったまま head をDaz側の位置へ移す。
func snapBreast(target *model.Skeleton, bone *model.Bone, sourceBone *model.Bone) {
	direction, length := bone.LocalAxis(1), bone.Length()
	target.MoveHead(bone, sourceBone.Head)
	target.MoveTail(bone, extrude(sourceBone.Head, direction, length))
}

// snapShin は脛の tail を足首(Daz足ボーンの head)へ合わせる。
func snapShin(target *model.Skeleton, source *model.Skeleton, bone *model.Bone, rule mapping.SnapRule) []Warning {
	ankle, err := source.Get(rule.Ankle)
	if err != nil {
		return []Warning{newWarning(model.WarningSourceBoneMissing, rule.Ankle,
			"足首ボーンが見つからないため %s の tail を合わせられません: %s", rule.Target, rule.Ankle)}
	}
	target.MoveTail(bone, ankle.Head)
	return nil
}

// snapAnkle は足の tail をつま先へ合わせ、踵とバンクの参照ボーンを中足骨の水平前方向から再配置する。
func snapAnkle(target *model.Skeleton, source *model.Skeleton, bone *model.Bone, rule mapping.SnapRule) []Warning {
	landmarks := rule.Foot
	if landmarks == nil {
		return nil
	}
	warnings := make([]Warning, 0)

	toe, err := source.Get(landmarks.Toe)
	if err != nil {
		warnings = append(warnings, newWarning(model.WarningSourceBoneMissing, landmarks.Toe,
			"つま先ボーンが見つからないため %s の tail を合わせられません: %s", rule.Target, landmarks.Toe))
	} else {
		target.MoveTail(bone, toe.Head)
	}

	metatarsal, err := source.Get(landmarks.Metatarsal)
	if err != nil {
		return append(warnings, newWarning(model.WarningSourceBoneMissing, landmarks.Metatarsal,
			"中足骨が見つからないため踵/バンクを再配置できません: %s", landmarks.Metatarsal))
	}
	forward, ok := flattenUnit(metatarsal.Vector())
	if !ok {
		return append(warnings, newWarning(model.WarningSourceBoneMissing, landmarks.Metatarsal,
			"中足骨が垂直のため前方向を決められません: %s", landmarks.Metatarsal))
	}

	heel, err := target.Get(landmarks.Heel)
	if err != nil {
		return append(warnings, newWarning(model.WarningTargetBoneMissing, landmarks.Heel,
			"踵参照ボーンが見つかりません: %s", landmarks.Heel))
	}
	heelLength := heel.Length()
	heelHead := levelTo(r3.Sub(metatarsal.Head, r3.Scale(heelBackOffset, forward)), r3.Dot(heel.Head, worldUp))
	heel.Connected = false
	target.MoveHead(heel, heelHead)
	target.MoveTail(heel, extrude(heelHead, forward, heelLength))

	banks := []struct {
		name     string
		landmark string
		offset   float64
	}{
		{name: landmarks.BankOuter, landmark: landmarks.SmallToe, offset: bankOuterOffset},
		{name: landmarks.BankInner, landmark: landmarks.BigToe, offset: bankInnerOffset},
	}
	lateral := r3.Cross(forward, worldUp)
	for _, bank := range banks {
		bankBone, err := target.Get(bank.name)
		if err != nil {
			warnings = append(warnings, newWarning(model.WarningTargetBoneMissing, bank.name,
				"バンク参照ボーンが見つかりません: %s", bank.name))
			continue
		}
		landmark, err := source.Get(bank.landmark)
		if err != nil {
			warnings = append(warnings, newWarning(model.WarningSourceBoneMissing, bank.landmark,
				"バンク位置の基準ボーンが見つかりません: %s", bank.landmark))
			continue
		}
		placeBank(target, bankBone, landmark.Head, heelHead, forward, lateral, bank.offset, heelLength)
	}
	return warnings
}

// placeBank は踵位置を基準線へ射影し、踵線から離れる向きへ横方向オフセットしたバンク位置を設定する。
func placeBank(
	target *model.Skeleton,
	bank *model.Bone,
	landmark r3.Vec,
	heelHead r3.Vec,
	forward r3.Vec,
	lateral r3.Vec,
	offset float64,
	length float64,
) {
	projected := projectPointOnLine(heelHead, landmark, forward)
	side := r3.Dot(r3.Sub(projected, heelHead), lateral)
	direction := lateral
	if side < 0 {
		direction = r3.Scale(-1, lateral)
	}
	head := levelTo(r3.Add(projected, r3.Scale(offset, direction)), r3.Dot(bank.Head, worldUp))

	bank.Connected = false
	target.MoveHead(bank, head)
	target.MoveTail(bank, extrude(head, forward, length))
}

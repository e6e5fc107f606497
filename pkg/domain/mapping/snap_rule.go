// 指示: miu200521358
package mapping

// Anchor はスナップで合わせる端点を表す。
type Anchor int

const (
	AnchorNone Anchor = iota
	AnchorHead
	AnchorTail
	AnchorHeadAndTail
)

// HasHead は head を合わせるか判定する。
func (a Anchor) HasHead() bool {
	return a == AnchorHead || a == AnchorHeadAndTail
}

// HasTail は tail を合わせるか判定する。
func (a Anchor) HasTail() bool {
	return a == AnchorTail || a == AnchorHeadAndTail
}

// Special は個別ボーン向けの特殊スナップを表す。
type Special int

const (
	SpecialNone Special = iota
	// SpecialShin は脛の tail を足首位置へ合わせる。
	SpecialShin
	// SpecialAnkle は足の tail をつま先へ合わせ、踵/バンクを再配置する。
	SpecialAnkle
	// SpecialFootProximal は元ボーンを持たない指の根元ボーンを手前へ延長配置する。
	SpecialFootProximal
	// SpecialBreast はテンプレート側の向きを保ったまま head のみ移動する。
	SpecialBreast
)

// FootLandmarks は足首スナップで参照するボーン名を表す。
type FootLandmarks struct {
	Toe        string
	Metatarsal string
	SmallToe   string
	BigToe     string
	Heel       string
	BankOuter  string
	BankInner  string
}

// SnapRule はARP参照ボーン1本に対するスナップ指定を表す。
type SnapRule struct {
	Target     string
	Source     string
	Anchor     Anchor
	Flipped    bool
	Disconnect bool
	Special    Special
	Ankle      string
	Foot       *FootLandmarks
}

// snapRuleTemplate は左右展開前のスナップ指定を表す。
type snapRuleTemplate struct {
	Target     string
	Source     Role
	Anchor     Anchor
	Flipped    bool
	Disconnect bool
	Special    Special
}

// snapRuleTemplates は根元から末端への処理順を保持する。
// 足首ルールは踵/バンク参照ボーンが未移動であることを前提とするため、順序は固定とする。
var snapRuleTemplates = []snapRuleTemplate{
	{Target: "root_ref.x", Source: RolePelvis, Anchor: AnchorHeadAndTail, Flipped: true},
	{Target: "spine_01_ref.x", Source: RoleAbdomenLower, Anchor: AnchorHeadAndTail},
	{Target: "spine_02_ref.x", Source: RoleAbdomenUpper, Anchor: AnchorHeadAndTail},
	{Target: "spine_03_ref.x", Source: RoleChestLower, Anchor: AnchorHeadAndTail},
	{Target: "spine_04_ref.x", Source: RoleChestUpper, Anchor: AnchorHeadAndTail},
	{Target: "subneck_1_ref.x", Source: RoleNeckLower, Anchor: AnchorHeadAndTail},
	{Target: "neck_ref.x", Source: RoleNeckUpper, Anchor: AnchorHeadAndTail},
	{Target: "head_ref.x", Source: RoleHead, Anchor: AnchorHeadAndTail},

	{Target: "thigh_ref{Side}", Source: RoleThighBend, Anchor: AnchorHead, Disconnect: true},
	{Target: "thigh_ref{Side}", Source: RoleThighTwist, Anchor: AnchorTail},
	{Target: "leg_ref{Side}", Source: RoleShin, Anchor: AnchorHead, Special: SpecialShin},
	{Target: "foot_ref{Side}", Source: RoleFoot, Anchor: AnchorHead, Special: SpecialAnkle},
	{Target: "toes_ref{Side}", Source: RoleToe, Anchor: AnchorHeadAndTail},
	{Target: "toes_thumb1_ref{Side}", Source: RoleBigToe, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "toes_thumb2_ref{Side}", Source: RoleBigToe2, Anchor: AnchorHeadAndTail},
	{Target: "toes_index1_ref{Side}", Source: RoleSmallToe1, Special: SpecialFootProximal, Disconnect: true},
	{Target: "toes_index2_ref{Side}", Source: RoleSmallToe1, Anchor: AnchorHeadAndTail},
	{Target: "toes_index3_ref{Side}", Source: RoleSmallToe1_2, Anchor: AnchorHeadAndTail},
	{Target: "toes_middle1_ref{Side}", Source: RoleSmallToe2, Special: SpecialFootProximal, Disconnect: true},
	{Target: "toes_middle2_ref{Side}", Source: RoleSmallToe2, Anchor: AnchorHeadAndTail},
	{Target: "toes_middle3_ref{Side}", Source: RoleSmallToe2_2, Anchor: AnchorHeadAndTail},
	{Target: "toes_ring1_ref{Side}", Source: RoleSmallToe3, Special: SpecialFootProximal, Disconnect: true},
	{Target: "toes_ring2_ref{Side}", Source: RoleSmallToe3, Anchor: AnchorHeadAndTail},
	{Target: "toes_ring3_ref{Side}", Source: RoleSmallToe3_2, Anchor: AnchorHeadAndTail},
	{Target: "toes_pinky1_ref{Side}", Source: RoleSmallToe4, Special: SpecialFootProximal, Disconnect: true},
	{Target: "toes_pinky2_ref{Side}", Source: RoleSmallToe4, Anchor: AnchorHeadAndTail},
	{Target: "toes_pinky3_ref{Side}", Source: RoleSmallToe4_2, Anchor: AnchorHeadAndTail},

	{Target: "shoulder_ref{Side}", Source: RoleCollar, Anchor: AnchorHeadAndTail},
	{Target: "arm_ref{Side}", Source: RoleShldrBend, Anchor: AnchorHead, Disconnect: true},
	{Target: "arm_ref{Side}", Source: RoleShldrTwist, Anchor: AnchorTail},
	{Target: "forearm_ref{Side}", Source: RoleForearmBend, Anchor: AnchorHead},
	{Target: "forearm_ref{Side}", Source: RoleForearmTwist, Anchor: AnchorTail},
	{Target: "hand_ref{Side}", Source: RoleHand, Anchor: AnchorHeadAndTail},
	{Target: "thumb1_ref{Side}", Source: RoleThumb1, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "thumb2_ref{Side}", Source: RoleThumb2, Anchor: AnchorHeadAndTail},
	{Target: "thumb3_ref{Side}", Source: RoleThumb3, Anchor: AnchorHeadAndTail},
	{Target: "index1_base_ref{Side}", Source: RoleCarpal1, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "index1_ref{Side}", Source: RoleIndex1, Anchor: AnchorHeadAndTail},
	{Target: "index2_ref{Side}", Source: RoleIndex2, Anchor: AnchorHeadAndTail},
	{Target: "index3_ref{Side}", Source: RoleIndex3, Anchor: AnchorHeadAndTail},
	{Target: "middle1_base_ref{Side}", Source: RoleCarpal2, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "middle1_ref{Side}", Source: RoleMid1, Anchor: AnchorHeadAndTail},
	{Target: "middle2_ref{Side}", Source: RoleMid2, Anchor: AnchorHeadAndTail},
	{Target: "middle3_ref{Side}", Source: RoleMid3, Anchor: AnchorHeadAndTail},
	{Target: "ring1_base_ref{Side}", Source: RoleCarpal3, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "ring1_ref{Side}", Source: RoleRing1, Anchor: AnchorHeadAndTail},
	{Target: "ring2_ref{Side}", Source: RoleRing2, Anchor: AnchorHeadAndTail},
	{Target: "ring3_ref{Side}", Source: RoleRing3, Anchor: AnchorHeadAndTail},
	{Target: "pinky1_base_ref{Side}", Source: RoleCarpal4, Anchor: AnchorHeadAndTail, Disconnect: true},
	{Target: "pinky1_ref{Side}", Source: RolePinky1, Anchor: AnchorHeadAndTail},
	{Target: "pinky2_ref{Side}", Source: RolePinky2, Anchor: AnchorHeadAndTail},
	{Target: "pinky3_ref{Side}", Source: RolePinky3, Anchor: AnchorHeadAndTail},

	{Target: "breast_ref{Side}", Source: RolePectoral, Anchor: AnchorHead, Special: SpecialBreast},
}

// DefaultSnapRules は左右展開済みのスナップ指定を処理順で返す。
func DefaultSnapRules() []SnapRule {
	rules := make([]SnapRule, 0, len(snapRuleTemplates)*2)
	for _, template := range snapRuleTemplates {
		for _, side := range template.Source.Sides() {
			rules = append(rules, expandSnapRule(template, side))
		}
	}
	return rules
}

// expandSnapRule はテンプレートを指定側のスナップ指定へ展開する。
func expandSnapRule(template snapRuleTemplate, side Side) SnapRule {
	rule := SnapRule{
		Target:     ResolveArpTemplate(template.Target, side),
		Source:     template.Source.DazName(side),
		Anchor:     template.Anchor,
		Flipped:    template.Flipped,
		Disconnect: template.Disconnect,
		Special:    template.Special,
	}
	switch template.Special {
	case SpecialShin:
		rule.Ankle = RoleFoot.DazName(side)
	case SpecialAnkle:
		rule.Foot = &FootLandmarks{
			Toe:        RoleToe.DazName(side),
			Metatarsal: RoleMetatarsals.DazName(side),
			SmallToe:   RoleSmallToe4.DazName(side),
			BigToe:     RoleBigToe.DazName(side),
			Heel:       ResolveArpTemplate("foot_heel_ref{Side}", side),
			BankOuter:  ResolveArpTemplate("foot_bank_01_ref{Side}", side),
			BankInner:  ResolveArpTemplate("foot_bank_02_ref{Side}", side),
		}
	}
	return rule
}

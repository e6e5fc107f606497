// 指示: miu200521358
package mapping

// RollKind はDazとARPのボーンローカル軸の違いを補正する方法を表す。
type RollKind int

const (
	RollIdentity RollKind = iota
	Roll90
	Roll180
	Roll270
	RollDifference
	RollExtraBones
)

// String は補正種別名を返す。
func (k RollKind) String() string {
	switch k {
	case Roll90:
		return "ROLL_90"
	case Roll180:
		return "ROLL_180"
	case Roll270:
		return "ROLL_270"
	case RollDifference:
		return "ROLL_DIFF"
	case RollExtraBones:
		return "ADD_EXTRA_BONES"
	}
	return "IDENTITY"
}

// Degrees は軸回転系の補正角度を返す。軸回転系でない場合は 0 と false を返す。
func (k RollKind) Degrees() (float64, bool) {
	switch k {
	case Roll90:
		return 90, true
	case Roll180:
		return 180, true
	case Roll270:
		return 270, true
	}
	return 0, false
}

// RollCorrection はARPボーン1本に対するドライバー補正指定を表す。
type RollCorrection struct {
	Kind     RollKind
	Override string
	Second   string
	Negate   bool
	Extra    []string
}

// rollCorrectionTemplate は左右展開前の補正指定を表す。
type rollCorrectionTemplate struct {
	Role     Role
	Kind     RollKind
	Override string
	Second   string
	Negate   bool
	Extra    []string
}

// rollCorrectionTemplates はドライバー補正を必要とするボーンを保持する。
var rollCorrectionTemplates = []rollCorrectionTemplate{
	{Role: RoleNeckLower, Kind: RollExtraBones, Extra: []string{"neck.x"}},
	{Role: RoleShldrBend, Kind: Roll90, Override: "c_arm_fk{Side}"},
	{Role: RoleShldrTwist, Kind: RollDifference, Second: "shoulder{Side}"},
	{Role: RoleForearmBend, Kind: Roll90, Override: "c_forearm_fk{Side}"},
	{Role: RoleForearmTwist, Kind: RollDifference, Second: "hand{Side}", Negate: true},
	{Role: RoleHand, Kind: Roll90, Override: "c_hand_fk{Side}"},
	{Role: RoleThumb1, Kind: Roll270},
	{Role: RoleThumb2, Kind: Roll270},
	{Role: RoleThumb3, Kind: Roll270},
	{Role: RoleThighBend, Kind: RollIdentity, Override: "c_thigh_fk{Side}"},
	{Role: RoleShin, Kind: Roll180, Override: "c_leg_fk{Side}"},
	{Role: RoleFoot, Kind: Roll180, Override: "c_foot_fk{Side}"},
}

// RollCorrections はARPボーン名から補正指定への表を表す。
type RollCorrections map[string]RollCorrection

// Lookup は指定ARPボーンの補正指定を返す。未登録は恒等補正とする。
func (r RollCorrections) Lookup(target string) RollCorrection {
	if correction, ok := r[target]; ok {
		return correction
	}
	return RollCorrection{Kind: RollIdentity}
}

// DefaultRollCorrections は左右展開済みの補正表を返す。
func DefaultRollCorrections() RollCorrections {
	corrections := RollCorrections{}
	for _, template := range rollCorrectionTemplates {
		for _, side := range template.Role.Sides() {
			target := template.Role.ArpName(side)
			if target == "" {
				continue
			}
			correction := RollCorrection{
				Kind:     template.Kind,
				Override: ResolveArpTemplate(template.Override, side),
				Second:   ResolveArpTemplate(template.Second, side),
				Negate:   template.Negate,
			}
			for _, extra := range template.Extra {
				correction.Extra = append(correction.Extra, ResolveArpTemplate(extra, side))
			}
			corrections[target] = correction
		}
	}
	return corrections
}

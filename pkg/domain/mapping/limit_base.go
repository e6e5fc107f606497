// 指示: miu200521358
package mapping

// LimitBase はARPポーズボーンへ回転制限を写す際の元ボーン指定を表す。
// Frame が空でない場合、制限値はそのボーン基準のローカル空間へ再投影する必要がある。
type LimitBase struct {
	Source string
	Frame  string
}

// LimitBases はARPポーズボーン名から元ボーン指定への表を表す。
type LimitBases map[string]LimitBase

// limitBaseTemplate は左右展開前の元ボーン指定を表す。
type limitBaseTemplate struct {
	Target string
	Source Role
	Frame  string
}

var limitBaseTemplates = []limitBaseTemplate{
	{Target: "c_root.x", Source: RolePelvis},
	{Target: "c_spine_01.x", Source: RoleAbdomenLower},
	{Target: "c_spine_02.x", Source: RoleAbdomenUpper},
	{Target: "c_spine_03.x", Source: RoleChestLower},
	{Target: "c_spine_04.x", Source: RoleChestUpper},
	{Target: "c_subneck_1.x", Source: RoleNeckLower},
	{Target: "c_neck.x", Source: RoleNeckUpper},
	{Target: "c_head.x", Source: RoleHead},
	{Target: "c_shoulder{Side}", Source: RoleCollar},
	{Target: "c_arm_fk{Side}", Source: RoleShldrBend},
	{Target: "c_forearm_fk{Side}", Source: RoleForearmBend, Frame: "arm_ref{Side}"},
	{Target: "c_hand_fk{Side}", Source: RoleHand, Frame: "forearm_ref{Side}"},
	{Target: "c_thigh_fk{Side}", Source: RoleThighBend},
	{Target: "c_leg_fk{Side}", Source: RoleShin},
	{Target: "c_foot_fk{Side}", Source: RoleFoot},
}

// Resolve はARPポーズボーン名に対応する元ボーン指定を返す。
func (l LimitBases) Resolve(target string) (LimitBase, bool) {
	base, ok := l[target]
	return base, ok
}

// DefaultLimitBases は左右展開済みの元ボーン指定表を返す。
func DefaultLimitBases() LimitBases {
	bases := LimitBases{}
	for _, template := range limitBaseTemplates {
		for _, side := range template.Source.Sides() {
			bases[ResolveArpTemplate(template.Target, side)] = LimitBase{
				Source: template.Source.DazName(side),
				Frame:  ResolveArpTemplate(template.Frame, side),
			}
		}
	}
	return bases
}

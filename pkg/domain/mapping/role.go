// 指示: miu200521358
// Package mapping はDazとAutoRig Proのボーン対応表を提供する。
package mapping

import "strings"

const sidePlaceholder = "{Side}"

// Side はボーンの左右を表す。
type Side int

const (
	// SideCenter は中央(左右なし)。
	SideCenter Side = iota
	// SideLeft は左。
	SideLeft
	// SideRight は右。
	SideRight
)

// BothSides は左右の処理順を保持する。
var BothSides = []Side{SideLeft, SideRight}

// dazPrefix はDaz側ボーン名の接頭辞を返す。
func (s Side) dazPrefix() string {
	switch s {
	case SideLeft:
		return "l"
	case SideRight:
		return "r"
	}
	return ""
}

// ArpSuffix はARP側ボーン名の接尾辞を返す。
func (s Side) ArpSuffix() string {
	switch s {
	case SideLeft:
		return ".l"
	case SideRight:
		return ".r"
	}
	return ".x"
}

// String は左右名を返す。
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "center"
}

// Role はDaz骨格上のボーン役割を表す。
type Role int

const (
	RolePelvis Role = iota
	RoleAbdomenLower
	RoleAbdomenUpper
	RoleChestLower
	RoleChestUpper
	RoleNeckLower
	RoleNeckUpper
	RoleHead
	RolePectoral
	RoleCollar
	RoleShldrBend
	RoleShldrTwist
	RoleForearmBend
	RoleForearmTwist
	RoleHand
	RoleCarpal1
	RoleCarpal2
	RoleCarpal3
	RoleCarpal4
	RoleThumb1
	RoleThumb2
	RoleThumb3
	RoleIndex1
	RoleIndex2
	RoleIndex3
	RoleMid1
	RoleMid2
	RoleMid3
	RoleRing1
	RoleRing2
	RoleRing3
	RolePinky1
	RolePinky2
	RolePinky3
	RoleThighBend
	RoleThighTwist
	RoleShin
	RoleFoot
	RoleMetatarsals
	RoleToe
	RoleBigToe
	RoleBigToe2
	RoleSmallToe1
	RoleSmallToe1_2
	RoleSmallToe2
	RoleSmallToe2_2
	RoleSmallToe3
	RoleSmallToe3_2
	RoleSmallToe4
	RoleSmallToe4_2

	roleCount
)

// RoleSpec は役割ごとのボーン名テンプレートを表す。
// Arp が空の役割はARP側に対応ボーンを持たない。
type RoleSpec struct {
	Daz   string
	Arp   string
	Sided bool
}

// roleSpecs は役割ごとの命名規則を保持する。配列長で役割の網羅を固定する。
var roleSpecs = [roleCount]RoleSpec{
	RolePelvis:       {Daz: "pelvis", Arp: "root.x"},
	RoleAbdomenLower: {Daz: "abdomenLower", Arp: "spine_01.x"},
	RoleAbdomenUpper: {Daz: "abdomenUpper", Arp: "spine_02.x"},
	RoleChestLower:   {Daz: "chestLower", Arp: "spine_03.x"},
	RoleChestUpper:   {Daz: "chestUpper", Arp: "spine_04.x"},
	RoleNeckLower:    {Daz: "neckLower", Arp: "subneck_1.x"},
	RoleNeckUpper:    {Daz: "neckUpper", Arp: "neck.x"},
	RoleHead:         {Daz: "head", Arp: "head.x"},
	RolePectoral:     {Daz: "{Side}Pectoral", Arp: "breast{Side}", Sided: true},
	RoleCollar:       {Daz: "{Side}Collar", Arp: "shoulder{Side}", Sided: true},
	RoleShldrBend:    {Daz: "{Side}ShldrBend", Arp: "arm_stretch{Side}", Sided: true},
	RoleShldrTwist:   {Daz: "{Side}ShldrTwist", Arp: "arm_twist{Side}", Sided: true},
	RoleForearmBend:  {Daz: "{Side}ForearmBend", Arp: "forearm_stretch{Side}", Sided: true},
	RoleForearmTwist: {Daz: "{Side}ForearmTwist", Arp: "forearm_twist{Side}", Sided: true},
	RoleHand:         {Daz: "{Side}Hand", Arp: "hand{Side}", Sided: true},
	RoleCarpal1:      {Daz: "{Side}Carpal1", Arp: "index1_base{Side}", Sided: true},
	RoleCarpal2:      {Daz: "{Side}Carpal2", Arp: "middle1_base{Side}", Sided: true},
	RoleCarpal3:      {Daz: "{Side}Carpal3", Arp: "ring1_base{Side}", Sided: true},
	RoleCarpal4:      {Daz: "{Side}Carpal4", Arp: "pinky1_base{Side}", Sided: true},
	RoleThumb1:       {Daz: "{Side}Thumb1", Arp: "thumb1{Side}", Sided: true},
	RoleThumb2:       {Daz: "{Side}Thumb2", Arp: "thumb2{Side}", Sided: true},
	RoleThumb3:       {Daz: "{Side}Thumb3", Arp: "thumb3{Side}", Sided: true},
	RoleIndex1:       {Daz: "{Side}Index1", Arp: "index1{Side}", Sided: true},
	RoleIndex2:       {Daz: "{Side}Index2", Arp: "index2{Side}", Sided: true},
	RoleIndex3:       {Daz: "{Side}Index3", Arp: "index3{Side}", Sided: true},
	RoleMid1:         {Daz: "{Side}Mid1", Arp: "middle1{Side}", Sided: true},
	RoleMid2:         {Daz: "{Side}Mid2", Arp: "middle2{Side}", Sided: true},
	RoleMid3:         {Daz: "{Side}Mid3", Arp: "middle3{Side}", Sided: true},
	RoleRing1:        {Daz: "{Side}Ring1", Arp: "ring1{Side}", Sided: true},
	RoleRing2:        {Daz: "{Side}Ring2", Arp: "ring2{Side}", Sided: true},
	RoleRing3:        {Daz: "{Side}Ring3", Arp: "ring3{Side}", Sided: true},
	RolePinky1:       {Daz: "{Side}Pinky1", Arp: "pinky1{Side}", Sided: true},
	RolePinky2:       {Daz: "{Side}Pinky2", Arp: "pinky2{Side}", Sided: true},
	RolePinky3:       {Daz: "{Side}Pinky3", Arp: "pinky3{Side}", Sided: true},
	RoleThighBend:    {Daz: "{Side}ThighBend", Arp: "thigh_stretch{Side}", Sided: true},
	RoleThighTwist:   {Daz: "{Side}ThighTwist", Arp: "thigh_twist{Side}", Sided: true},
	RoleShin:         {Daz: "{Side}Shin", Arp: "leg_stretch{Side}", Sided: true},
	RoleFoot:         {Daz: "{Side}Foot", Arp: "foot{Side}", Sided: true},
	RoleMetatarsals:  {Daz: "{Side}Metatarsals", Sided: true},
	RoleToe:          {Daz: "{Side}Toe", Arp: "toes_01{Side}", Sided: true},
	RoleBigToe:       {Daz: "{Side}BigToe", Arp: "toes_thumb1{Side}", Sided: true},
	RoleBigToe2:      {Daz: "{Side}BigToe_2", Arp: "toes_thumb2{Side}", Sided: true},
	RoleSmallToe1:    {Daz: "{Side}SmallToe1", Arp: "toes_index2{Side}", Sided: true},
	RoleSmallToe1_2:  {Daz: "{Side}SmallToe1_2", Arp: "toes_index3{Side}", Sided: true},
	RoleSmallToe2:    {Daz: "{Side}SmallToe2", Arp: "toes_middle2{Side}", Sided: true},
	RoleSmallToe2_2:  {Daz: "{Side}SmallToe2_2", Arp: "toes_middle3{Side}", Sided: true},
	RoleSmallToe3:    {Daz: "{Side}SmallToe3", Arp: "toes_ring2{Side}", Sided: true},
	RoleSmallToe3_2:  {Daz: "{Side}SmallToe3_2", Arp: "toes_ring3{Side}", Sided: true},
	RoleSmallToe4:    {Daz: "{Side}SmallToe4", Arp: "toes_pinky2{Side}", Sided: true},
	RoleSmallToe4_2:  {Daz: "{Side}SmallToe4_2", Arp: "toes_pinky3{Side}", Sided: true},
}

// Roles は全役割を定義順で返す。
func Roles() []Role {
	roles := make([]Role, 0, roleCount)
	for role := Role(0); role < roleCount; role++ {
		roles = append(roles, role)
	}
	return roles
}

// Spec は役割の命名規則を返す。
func (r Role) Spec() RoleSpec {
	if r < 0 || r >= roleCount {
		return RoleSpec{}
	}
	return roleSpecs[r]
}

// Sides は役割が取りうる左右を返す。
func (r Role) Sides() []Side {
	if r.Spec().Sided {
		return BothSides
	}
	return []Side{SideCenter}
}

// DazName はDaz側ボーン名を返す。
func (r Role) DazName(side Side) string {
	return resolveDazTemplate(r.Spec().Daz, side)
}

// ArpName はARP側ボーン名を返す。対応がない場合は空文字を返す。
func (r Role) ArpName(side Side) string {
	return ResolveArpTemplate(r.Spec().Arp, side)
}

// resolveDazTemplate はDaz側テンプレートの {Side} を l/r へ置換する。
func resolveDazTemplate(template string, side Side) string {
	return strings.ReplaceAll(template, sidePlaceholder, side.dazPrefix())
}

// ResolveArpTemplate はARP側テンプレートの {Side} を .l/.r/.x へ置換する。
func ResolveArpTemplate(template string, side Side) string {
	return strings.ReplaceAll(template, sidePlaceholder, side.ArpSuffix())
}

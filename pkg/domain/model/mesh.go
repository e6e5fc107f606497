// 指示: miu200521358
package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// ModifierType はメッシュモディファイア種別を表す。
type ModifierType string

const (
	// MODIFIER_ARMATURE はアーマチュアモディファイア。
	MODIFIER_ARMATURE ModifierType = "ARMATURE"
	// MODIFIER_VERTEX_WEIGHT_MIX は頂点ウェイト合成モディファイア。
	MODIFIER_VERTEX_WEIGHT_MIX ModifierType = "VERTEX_WEIGHT_MIX"
)

// WeightMixMode は頂点ウェイト合成の演算を表す。
type WeightMixMode string

const (
	MIX_MODE_SET WeightMixMode = "SET"
	MIX_MODE_ADD WeightMixMode = "ADD"
	MIX_MODE_SUB WeightMixMode = "SUB"
	MIX_MODE_MUL WeightMixMode = "MUL"
	MIX_MODE_AVG WeightMixMode = "AVG"
)

// WeightMixSet は頂点ウェイト合成の対象頂点集合を表す。
type WeightMixSet string

const (
	MIX_SET_ALL WeightMixSet = "ALL"
	MIX_SET_A   WeightMixSet = "A"
	MIX_SET_B   WeightMixSet = "B"
	MIX_SET_OR  WeightMixSet = "OR"
	MIX_SET_AND WeightMixSet = "AND"
)

// VertexGroup は頂点グループ(スキンウェイト)を表す。
type VertexGroup struct {
	Name       string
	LockWeight bool
	Weights    map[int]float64
}

// NewVertexGroup は空の頂点グループを生成する。
func NewVertexGroup(name string) *VertexGroup {
	return &VertexGroup{Name: name, Weights: map[int]float64{}}
}

// Indexes は登録頂点indexを昇順で返す。
func (g *VertexGroup) Indexes() []int {
	indexes := make([]int, 0, len(g.Weights))
	for index := range g.Weights {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	return indexes
}

// Modifier はメッシュモディファイアを表す。
type Modifier struct {
	Name         string
	Type         ModifierType
	Object       string
	VertexGroupA string
	VertexGroupB string
	MixMode      WeightMixMode
	MixSet       WeightMixSet
}

// ShapeKey はシェイプキーとその駆動ドライバーを表す。
type ShapeKey struct {
	Name   string
	Value  float64
	Driver *Driver
}

// Mesh はメッシュオブジェクトを表す。
// Vertices は頂点位置を持つ場合のみ VertexCount 件となる。
type Mesh struct {
	Name         string
	Parent       string
	VertexCount  int
	Vertices     []r3.Vec
	Selected     map[int]bool
	VertexGroups []*VertexGroup
	ShapeKeys    []*ShapeKey
	Modifiers    []*Modifier
}

// NewMesh は空のメッシュを生成する。
func NewMesh(name string, vertexCount int) *Mesh {
	return &Mesh{Name: name, VertexCount: vertexCount}
}

// SetVertices は頂点位置を設定し、頂点数を合わせる。
func (m *Mesh) SetVertices(vertices []r3.Vec) {
	m.Vertices = vertices
	m.VertexCount = len(vertices)
}

// IsSelected は頂点が選択されているか判定する。
func (m *Mesh) IsSelected(index int) bool {
	return m.Selected[index]
}

// SetSelected は頂点の選択状態を設定する。
func (m *Mesh) SetSelected(index int, selected bool) error {
	if index < 0 || index >= m.VertexCount {
		return fmt.Errorf("%s/%d: %w", m.Name, index, ErrVertexOutOfRange)
	}
	if !selected {
		delete(m.Selected, index)
		return nil
	}
	if m.Selected == nil {
		m.Selected = map[int]bool{}
	}
	m.Selected[index] = true
	return nil
}

// SelectedIndexes は選択頂点indexを昇順で返す。
func (m *Mesh) SelectedIndexes() []int {
	indexes := make([]int, 0, len(m.Selected))
	for index, selected := range m.Selected {
		if selected {
			indexes = append(indexes, index)
		}
	}
	sort.Ints(indexes)
	return indexes
}

// VertexGroup は指定名の頂点グループを返す。
func (m *Mesh) VertexGroup(name string) (*VertexGroup, error) {
	for _, group := range m.VertexGroups {
		if group.Name == name {
			return group, nil
		}
	}
	return nil, fmt.Errorf("%s/%s: %w", m.Name, name, ErrVertexGroupNotFound)
}

// HasVertexGroup は指定名の頂点グループが存在するか判定する。
func (m *Mesh) HasVertexGroup(name string) bool {
	_, err := m.VertexGroup(name)
	return err == nil
}

// AddVertexGroup は頂点グループを追加する。
func (m *Mesh) AddVertexGroup(group *VertexGroup) error {
	if m.HasVertexGroup(group.Name) {
		return fmt.Errorf("%s/%s: %w", m.Name, group.Name, ErrDuplicateVertexGroup)
	}
	m.VertexGroups = append(m.VertexGroups, group)
	return nil
}

// RenameVertexGroup は頂点グループ名を変更する。
func (m *Mesh) RenameVertexGroup(oldName string, newName string) error {
	group, err := m.VertexGroup(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if m.HasVertexGroup(newName) {
		return fmt.Errorf("%s/%s: %w", m.Name, newName, ErrDuplicateVertexGroup)
	}
	group.Name = newName
	return nil
}

// RemoveVertexGroup は頂点グループを削除する。
func (m *Mesh) RemoveVertexGroup(name string) error {
	for i, group := range m.VertexGroups {
		if group.Name == name {
			m.VertexGroups = append(m.VertexGroups[:i], m.VertexGroups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s/%s: %w", m.Name, name, ErrVertexGroupNotFound)
}

// Modifier は指定名のモディファイアを返す。
func (m *Mesh) Modifier(name string) (*Modifier, error) {
	for _, modifier := range m.Modifiers {
		if modifier.Name == name {
			return modifier, nil
		}
	}
	return nil, fmt.Errorf("%s/%s: %w", m.Name, name, ErrModifierNotFound)
}

// AddModifier はモディファイアを末尾へ追加する。同名がある場合は連番を付与した名前で追加する。
func (m *Mesh) AddModifier(modifier *Modifier) *Modifier {
	base := modifier.Name
	if base == "" {
		base = string(modifier.Type)
	}
	name := base
	for serial := 1; ; serial++ {
		if _, err := m.Modifier(name); err != nil {
			break
		}
		name = fmt.Sprintf("%s.%03d", base, serial)
	}
	modifier.Name = name
	m.Modifiers = append(m.Modifiers, modifier)
	return modifier
}

// MoveModifier はモディファイアをスタック内の指定位置へ移動する。
func (m *Mesh) MoveModifier(name string, index int) error {
	from := -1
	for i, modifier := range m.Modifiers {
		if modifier.Name == name {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%s/%s: %w", m.Name, name, ErrModifierNotFound)
	}
	if index < 0 {
		index = 0
	}
	if index >= len(m.Modifiers) {
		index = len(m.Modifiers) - 1
	}
	modifier := m.Modifiers[from]
	m.Modifiers = append(m.Modifiers[:from], m.Modifiers[from+1:]...)
	m.Modifiers = append(m.Modifiers[:index], append([]*Modifier{modifier}, m.Modifiers[index:]...)...)
	return nil
}

// RemoveModifier はモディファイアを削除する。
func (m *Mesh) RemoveModifier(name string) error {
	for i, modifier := range m.Modifiers {
		if modifier.Name == name {
			m.Modifiers = append(m.Modifiers[:i], m.Modifiers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s/%s: %w", m.Name, name, ErrModifierNotFound)
}

// ApplyModifier はモディファイアの結果をメッシュデータへ焼き込み、スタックから外す。
// 失敗時はモディファイアをスタックに残したままエラーを返す。
func (m *Mesh) ApplyModifier(name string) error {
	modifier, err := m.Modifier(name)
	if err != nil {
		return err
	}
	switch modifier.Type {
	case MODIFIER_VERTEX_WEIGHT_MIX:
		if err := m.applyWeightMix(modifier); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s/%s(%s): %w", m.Name, name, modifier.Type, ErrModifierNotApplicable)
	}
	return m.RemoveModifier(name)
}

// applyWeightMix は頂点ウェイト合成を A グループへ焼き込む。結果は 0..1 にクランプする。
func (m *Mesh) applyWeightMix(modifier *Modifier) error {
	groupA, err := m.VertexGroup(modifier.VertexGroupA)
	if err != nil {
		return err
	}
	groupB, err := m.VertexGroup(modifier.VertexGroupB)
	if err != nil {
		return err
	}
	mixed := map[int]float64{}
	for _, index := range m.weightMixTargets(modifier.MixSet, groupA, groupB) {
		a, inA := groupA.Weights[index]
		b := groupB.Weights[index]
		value, err := mixWeight(modifier.MixMode, a, b)
		if err != nil {
			return fmt.Errorf("%s/%s: %w", m.Name, modifier.Name, err)
		}
		value = clampWeight(value)
		if !inA && value == 0 {
			continue
		}
		mixed[index] = value
	}
	for index, value := range mixed {
		groupA.Weights[index] = value
	}
	return nil
}

// weightMixTargets は合成対象の頂点indexを昇順で返す。
func (m *Mesh) weightMixTargets(set WeightMixSet, groupA *VertexGroup, groupB *VertexGroup) []int {
	indexes := make([]int, 0)
	switch set {
	case MIX_SET_ALL:
		seen := map[int]struct{}{}
		for i := 0; i < m.VertexCount; i++ {
			seen[i] = struct{}{}
		}
		for index := range groupA.Weights {
			seen[index] = struct{}{}
		}
		for index := range groupB.Weights {
			seen[index] = struct{}{}
		}
		for index := range seen {
			indexes = append(indexes, index)
		}
	case MIX_SET_A:
		indexes = groupA.Indexes()
	case MIX_SET_B:
		indexes = groupB.Indexes()
	case MIX_SET_OR:
		seen := map[int]struct{}{}
		for index := range groupA.Weights {
			seen[index] = struct{}{}
		}
		for index := range groupB.Weights {
			seen[index] = struct{}{}
		}
		for index := range seen {
			indexes = append(indexes, index)
		}
	case MIX_SET_AND:
		for _, index := range groupA.Indexes() {
			if _, ok := groupB.Weights[index]; ok {
				indexes = append(indexes, index)
			}
		}
	}
	sort.Ints(indexes)
	return indexes
}

// mixWeight は合成モードに従って2値を合成する。
func mixWeight(mode WeightMixMode, a float64, b float64) (float64, error) {
	switch mode {
	case MIX_MODE_SET:
		return b, nil
	case MIX_MODE_ADD:
		return a + b, nil
	case MIX_MODE_SUB:
		return a - b, nil
	case MIX_MODE_MUL:
		return a * b, nil
	case MIX_MODE_AVG:
		return (a + b) * 0.5, nil
	}
	return 0, fmt.Errorf("unknown mix mode %q: %w", mode, ErrModifierNotApplicable)
}

// clampWeight はウェイトを 0..1 に収める。
func clampWeight(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

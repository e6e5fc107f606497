// 指示: miu200521358
package model

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Skeleton はアーマチュアオブジェクトとそのボーン集合を表す。
// ボーンは追加順を保持し、名前はスケルトン内で一意とする。
type Skeleton struct {
	Name  string
	bones []*Bone
	index map[string]int
}

// NewSkeleton は空のスケルトンを生成する。
func NewSkeleton(name string) *Skeleton {
	return &Skeleton{
		Name:  name,
		bones: make([]*Bone, 0),
		index: map[string]int{},
	}
}

// Len はボーン数を返す。
func (s *Skeleton) Len() int {
	return len(s.bones)
}

// Bones は追加順のボーン一覧を返す。
func (s *Skeleton) Bones() []*Bone {
	return append([]*Bone(nil), s.bones...)
}

// Contains は指定名のボーンが存在するか判定する。
func (s *Skeleton) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get は指定名のボーンを返す。
func (s *Skeleton) Get(name string) (*Bone, error) {
	idx, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", s.Name, name, ErrBoneNotFound)
	}
	return s.bones[idx], nil
}

// Add はボーンを末尾へ追加する。親は既存ボーンである必要がある。
func (s *Skeleton) Add(bone *Bone) error {
	if bone == nil {
		return fmt.Errorf("ボーンが未指定です")
	}
	if s.Contains(bone.Name) {
		return fmt.Errorf("%s/%s: %w", s.Name, bone.Name, ErrDuplicateBone)
	}
	if bone.Parent != "" && !s.Contains(bone.Parent) {
		return fmt.Errorf("%s/%s -> %s: %w", s.Name, bone.Name, bone.Parent, ErrParentNotFound)
	}
	s.index[bone.Name] = len(s.bones)
	s.bones = append(s.bones, bone)
	return nil
}

// Parent は親ボーンを返す。ルートの場合は nil を返す。
func (s *Skeleton) Parent(bone *Bone) *Bone {
	if bone == nil || bone.Parent == "" {
		return nil
	}
	parent, err := s.Get(bone.Parent)
	if err != nil {
		return nil
	}
	return parent
}

// Children は直下の子ボーンを追加順で返す。
func (s *Skeleton) Children(name string) []*Bone {
	children := make([]*Bone, 0)
	for _, bone := range s.bones {
		if bone.Parent == name && bone.Name != name {
			children = append(children, bone)
		}
	}
	return children
}

// Roots はルートボーンを追加順で返す。
func (s *Skeleton) Roots() []*Bone {
	return s.Children("")
}

// Walk は指定ボーン以下を深さ優先(前順)で走査する。fn が false を返すとその子孫を飛ばす。
func (s *Skeleton) Walk(name string, fn func(bone *Bone) bool) error {
	root, err := s.Get(name)
	if err != nil {
		return err
	}
	stack := []*Bone{root}
	for len(stack) > 0 {
		bone := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(bone) {
			continue
		}
		children := s.Children(bone.Name)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// MoveHead は head を移動する。接続ボーンの場合は親の tail も追従させる。
func (s *Skeleton) MoveHead(bone *Bone, head r3.Vec) {
	bone.Head = head
	if !bone.Connected {
		return
	}
	if parent := s.Parent(bone); parent != nil {
		parent.Tail = head
	}
}

// MoveTail は tail を移動する。接続された子ボーンの head も追従させる。
func (s *Skeleton) MoveTail(bone *Bone, tail r3.Vec) {
	bone.Tail = tail
	for _, child := range s.Children(bone.Name) {
		if child.Connected {
			child.Head = tail
		}
	}
}

// UniqueName は既存名と重複しない名前を返す。重複時は ".001" 形式の連番を付与する。
func (s *Skeleton) UniqueName(base string) string {
	if !s.Contains(base) {
		return base
	}
	for serial := 1; ; serial++ {
		candidate := fmt.Sprintf("%s.%03d", base, serial)
		if !s.Contains(candidate) {
			return candidate
		}
	}
}

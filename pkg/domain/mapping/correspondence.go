// 指示: miu200521358
package mapping

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateSource は同じDazボーンが複数回登録されたことを表す。
	ErrDuplicateSource = errors.New("duplicate correspondence source")
	// ErrDuplicateTarget は同じARPボーンへ複数のDazボーンが対応付けられたことを表す。
	ErrDuplicateTarget = errors.New("duplicate correspondence target")
	// ErrEmptyName は空のボーン名を表す。
	ErrEmptyName = errors.New("empty bone name")
)

// CorrespondenceEntry はDazボーン1本からARPボーン1本への対応を表す。
type CorrespondenceEntry struct {
	Source string
	Target string
}

// Correspondence は登録順を保持した単射の対応表を表す。
type Correspondence struct {
	entries  []CorrespondenceEntry
	bySource map[string]int
	byTarget map[string]int
}

// NewCorrespondence は対応表を構築する。重複や空名はエラーとする。
func NewCorrespondence(entries []CorrespondenceEntry) (*Correspondence, error) {
	c := &Correspondence{
		entries:  make([]CorrespondenceEntry, 0, len(entries)),
		bySource: make(map[string]int, len(entries)),
		byTarget: make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if err := c.add(entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// add は対応を1件追加する。
func (c *Correspondence) add(entry CorrespondenceEntry) error {
	source := strings.TrimSpace(entry.Source)
	target := strings.TrimSpace(entry.Target)
	if source == "" || target == "" {
		return fmt.Errorf("%q -> %q: %w", entry.Source, entry.Target, ErrEmptyName)
	}
	if _, exists := c.bySource[source]; exists {
		return fmt.Errorf("%s: %w", source, ErrDuplicateSource)
	}
	if _, exists := c.byTarget[target]; exists {
		return fmt.Errorf("%s -> %s: %w", source, target, ErrDuplicateTarget)
	}
	c.bySource[source] = len(c.entries)
	c.byTarget[target] = len(c.entries)
	c.entries = append(c.entries, CorrespondenceEntry{Source: source, Target: target})
	return nil
}

// Len は対応数を返す。
func (c *Correspondence) Len() int {
	return len(c.entries)
}

// Entries は登録順の対応一覧を返す。
func (c *Correspondence) Entries() []CorrespondenceEntry {
	return append([]CorrespondenceEntry(nil), c.entries...)
}

// Target はDazボーン名に対応するARPボーン名を返す。
func (c *Correspondence) Target(source string) (string, bool) {
	idx, ok := c.bySource[source]
	if !ok {
		return "", false
	}
	return c.entries[idx].Target, true
}

// Source はARPボーン名に対応するDazボーン名を返す。
func (c *Correspondence) Source(target string) (string, bool) {
	idx, ok := c.byTarget[target]
	if !ok {
		return "", false
	}
	return c.entries[idx].Source, true
}

// HasSource はDazボーン名が対応表のキーか判定する。
func (c *Correspondence) HasSource(source string) bool {
	_, ok := c.bySource[source]
	return ok
}

// HasTarget はARPボーン名が対応先として登録されているか判定する。
func (c *Correspondence) HasTarget(target string) bool {
	_, ok := c.byTarget[target]
	return ok
}

// With は対応を追加した新しい対応表を返す。既存の対応は変更しない。
func (c *Correspondence) With(entries ...CorrespondenceEntry) (*Correspondence, error) {
	return NewCorrespondence(append(c.Entries(), entries...))
}

// DefaultCorrespondence は役割表から組み立てた既定の対応表を返す。
func DefaultCorrespondence() *Correspondence {
	entries := make([]CorrespondenceEntry, 0, int(roleCount)*2)
	for _, role := range Roles() {
		for _, side := range role.Sides() {
			target := role.ArpName(side)
			if target == "" {
				continue
			}
			entries = append(entries, CorrespondenceEntry{Source: role.DazName(side), Target: target})
		}
	}
	correspondence, err := NewCorrespondence(entries)
	if err != nil {
		panic(fmt.Sprintf("既定対応表が不正です: %v", err))
	}
	return correspondence
}

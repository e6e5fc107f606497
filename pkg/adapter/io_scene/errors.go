// 指示: miu200521358
package io_scene

import (
	"errors"
	"fmt"
)

var (
	// ErrExtInvalid は対応していない拡張子を表す。
	ErrExtInvalid = errors.New("unsupported scene extension")
	// ErrFileNotFound はファイルが存在しないことを表す。
	ErrFileNotFound = errors.New("scene file not found")
	// ErrParseFailed は文書の解析失敗を表す。
	ErrParseFailed = errors.New("scene parse failed")
	// ErrSaveFailed は文書の保存失敗を表す。
	ErrSaveFailed = errors.New("scene save failed")
)

// IoError は入出力失敗の詳細を表す。
type IoError struct {
	kind    error
	Path    string
	Message string
	cause   error
}

// Error はエラーメッセージを返す。
func (e *IoError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.cause)
}

// Is は種別エラーとの一致を判定する。
func (e *IoError) Is(target error) bool {
	return target == e.kind
}

// Unwrap は原因エラーを返す。
func (e *IoError) Unwrap() error {
	return e.cause
}

func newIoExtInvalid(path string) error {
	return &IoError{kind: ErrExtInvalid, Path: path, Message: "対応していない拡張子です"}
}

func newIoFileNotFound(path string, cause error) error {
	return &IoError{kind: ErrFileNotFound, Path: path, Message: "ファイルが見つかりません", cause: cause}
}

func newIoParseFailed(path string, message string, cause error) error {
	return &IoError{kind: ErrParseFailed, Path: path, Message: message, cause: cause}
}

func newIoSaveFailed(path string, message string, cause error) error {
	return &IoError{kind: ErrSaveFailed, Path: path, Message: message, cause: cause}
}

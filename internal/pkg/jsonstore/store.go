// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	ErrDocumentNotFound = errors.New("文档不存在")
	ErrInvalidDocument  = errors.New("文档不是合法的 JSON")
	ErrInvalidName      = errors.New("非法的文档名")
)

// Store 把整个 JSON 文档存放在 dir 下的同名文件里。
// 每次读写都是整个文档，不做 schema 校验。
type Store struct {
	dir string

	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex, 4),
	}
}

func (s *Store) Dir() string {
	return s.dir
}

// Read 读取文档 name 并解析到 val 里
func (s *Store) Read(ctx context.Context, name string, val any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(ErrDocumentNotFound, "%s", name)
		}
		return errors.Wrapf(err, "读取文档失败: %s", name)
	}
	err = json.Unmarshal(data, val)
	if err != nil {
		return errors.Wrapf(ErrInvalidDocument, "%s: %s", name, err.Error())
	}
	return nil
}

// Write 用两个空格缩进序列化 val，先写临时文件再 rename 覆盖 name
func (s *Store) Write(ctx context.Context, name string, val any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err = enc.Encode(val); err != nil {
		return errors.Wrapf(err, "序列化文档失败: %s", name)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "写入文档失败: %s", name)
	}
	tmpName := tmp.Name()
	defer func() {
		// rename 成功之后这里会返回 not exist，忽略
		_ = os.Remove(tmpName)
	}()
	_, err = tmp.Write(buf.Bytes())
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "写入文档失败: %s", name)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "写入文档失败: %s", name)
	}
	return nil
}

// Lock 锁住文档 name，返回解锁函数。
// 读-改-写 的整个过程都要持有这把锁。
func (s *Store) Lock(name string) func() {
	s.mutex.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mutex.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *Store) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", errors.Wrapf(ErrInvalidName, "%q", name)
	}
	return filepath.Join(s.dir, name), nil
}

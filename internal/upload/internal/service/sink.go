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

package service

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/ecodeclub/portfolio/internal/pkg/filename"
	"github.com/pkg/errors"
)

var ErrInvalidFolder = errors.New("非法的上传目录")

// Folder 上传文件可以存放的目录
type Folder string

const (
	FolderProjects     Folder = "projects"
	FolderCertificates Folder = "certificates"
)

func (f Folder) Valid() bool {
	return f == FolderProjects || f == FolderCertificates
}

func ParseFolder(raw string) (Folder, error) {
	f := Folder(raw)
	if !f.Valid() {
		return "", errors.Wrapf(ErrInvalidFolder, "%q", raw)
	}
	return f, nil
}

//go:generate mockgen -source=./sink.go -package=uploadmocks -destination=../../mocks/sink.mock.go -typed Sink
type Sink interface {
	// Save 保存上传的文件，返回可以直接放进记录里的根路径，例如 /projects/cover-1700000000000.png
	Save(ctx context.Context, folder Folder, original string, src io.Reader) (string, error)
}

type localSink struct {
	root string
	gen  *filename.Generator
}

// NewLocalSink 文件保存在 root/{folder} 下
func NewLocalSink(root string, gen *filename.Generator) Sink {
	return &localSink{root: root, gen: gen}
}

func (s *localSink) Save(ctx context.Context, folder Folder, original string, src io.Reader) (string, error) {
	if !folder.Valid() {
		return "", errors.Wrapf(ErrInvalidFolder, "%q", folder)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, string(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "创建上传目录失败: %s", dir)
	}
	name := s.gen.Generate(original)
	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.Wrapf(err, "创建文件失败: %s", name)
	}
	_, err = io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", errors.Wrapf(err, "写入文件失败: %s", name)
	}
	return "/" + string(folder) + "/" + name, nil
}

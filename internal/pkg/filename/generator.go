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

package filename

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// DefaultExt 原始文件没有扩展名时使用
const DefaultExt = ".png"

// TimestampGenerateFunc 定义生成时间戳的函数类型
type TimestampGenerateFunc func(time.Time) int64

// Generator 根据上传文件的原始名字生成落盘用的文件名，
// 格式为 {base}-{毫秒时间戳}{ext}
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc) *Generator {
	return &Generator{timestampGenFunc: timestampGen}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() })
}

// Generate 同一毫秒内上传同名文件会冲突，不做处理
func (g *Generator) Generate(original string) string {
	name := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if name == "." || name == "/" {
		name = ""
	}
	ext := filepath.Ext(name)
	// .gitignore 这种整体都是扩展名的，当作没有扩展名
	if ext == name {
		ext = ""
	}
	base := collapseSpace(strings.TrimSuffix(name, ext))
	if ext == "" {
		ext = DefaultExt
	}
	return base + "-" + strconv.FormatInt(g.timestampGenFunc(time.Now()), 10) + ext
}

func collapseSpace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				sb.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

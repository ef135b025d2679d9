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

package domain

import "strconv"

// Record 集合里的一条记录，id 由存储分配
type Record[T any] interface {
	ID() int64
	// WithID 返回设置了 id 的副本
	WithID(id int64) T
}

// Patch 部分更新。没有出现的字段保持原值，永远不会修改 id
type Patch[T any] interface {
	Apply(old T) T
}

// NextID 空集合返回 1，否则返回最大 id + 1。
// 删除过的 id 不会被复用
func NextID[T Record[T]](items []T) int64 {
	if len(items) == 0 {
		return 1
	}
	maxID := items[0].ID()
	for _, item := range items[1:] {
		if item.ID() > maxID {
			maxID = item.ID()
		}
	}
	return maxID + 1
}

// MatchID 路径上的 id 按字符串比较，"01" 不等于 1
func MatchID(id int64, raw string) bool {
	return strconv.FormatInt(id, 10) == raw
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Nullable 可以是 null 的字段。Set 为 false 代表字段不存在
type Nullable struct {
	Set bool
	Val *string
}

// NullableOf 构造一个值为 val 的字段
func NullableOf(val string) Nullable {
	return Nullable{Set: true, Val: &val}
}

func setNullable(dst *Nullable, src Nullable) {
	if src.Set {
		*dst = src
	}
}

func setStrings(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	testCases := []struct {
		name  string
		items []Project
		want  int64
	}{
		{
			name: "空集合",
			want: 1,
		},
		{
			name:  "一条记录",
			items: []Project{{Id: 1}},
			want:  2,
		},
		{
			name:  "最大值加一而不是数量加一",
			items: []Project{{Id: 5}, {Id: 2}},
			want:  6,
		},
		{
			name:  "删除过中间的记录",
			items: []Project{{Id: 1}, {Id: 3}, {Id: 4}},
			want:  5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextID(tc.items))
		})
	}
}

func TestMatchID(t *testing.T) {
	assert.True(t, MatchID(12, "12"))
	assert.False(t, MatchID(12, "012"))
	assert.False(t, MatchID(12, "abc"))
	assert.False(t, MatchID(12, ""))
}

func TestProjectPatch_Apply(t *testing.T) {
	title := "New"
	featured := true
	empty := ""
	old := Project{
		Id:           3,
		Title:        "Old",
		Description:  "d",
		Image:        "/projects/a.png",
		Technologies: []string{"Go"},
	}
	testCases := []struct {
		name  string
		patch ProjectPatch
		want  Project
	}{
		{
			name:  "空补丁",
			patch: ProjectPatch{},
			want:  old,
		},
		{
			name: "覆盖出现的字段",
			patch: ProjectPatch{
				Title:        &title,
				Featured:     &featured,
				Technologies: []string{"Go", "Gin"},
			},
			want: Project{
				Id:           3,
				Title:        "New",
				Description:  "d",
				Image:        "/projects/a.png",
				Technologies: []string{"Go", "Gin"},
				Featured:     true,
			},
		},
		{
			name: "清空可选字段",
			patch: ProjectPatch{
				Image:        &empty,
				Technologies: []string{},
			},
			want: Project{
				Id:           3,
				Title:        "Old",
				Description:  "d",
				Technologies: []string{},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.patch.Apply(old))
		})
	}
}

func TestExperiencePatch_Apply(t *testing.T) {
	current := true
	end := "2023-01"
	empty := ""
	testCases := []struct {
		name  string
		patch ExperiencePatch
		want  *string
	}{
		{
			name:  "没传结束时间",
			patch: ExperiencePatch{Current: &current},
			want:  &end,
		},
		{
			name:  "null 清空结束时间",
			patch: ExperiencePatch{Current: &current, EndDate: Nullable{Set: true}},
			want:  nil,
		},
		{
			name:  "空字符串原样保留",
			patch: ExperiencePatch{Current: &current, EndDate: NullableOf("")},
			want:  &empty,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			old := Experience{
				Id:          1,
				Title:       "Dev",
				StartDate:   "2022-01",
				EndDate:     &end,
				Description: []string{"a"},
			}
			got := tc.patch.Apply(old)
			assert.Equal(t, Experience{
				Id:          1,
				Title:       "Dev",
				StartDate:   "2022-01",
				EndDate:     tc.want,
				Current:     true,
				Description: []string{"a"},
			}, got)
		})
	}
}

func TestCertificatePatch_Apply(t *testing.T) {
	issuer := "Uni"
	testCases := []struct {
		name  string
		old   Nullable
		patch Nullable
		want  Nullable
	}{
		{
			name:  "设置学分",
			patch: NullableOf("5"),
			want:  NullableOf("5"),
		},
		{
			name: "没传学分保持原值",
			old:  Nullable{Set: true},
			want: Nullable{Set: true},
		},
		{
			name:  "null 覆盖原值",
			old:   NullableOf("5"),
			patch: Nullable{Set: true},
			want:  Nullable{Set: true},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			old := Certificate{Id: 9, Title: "Cert", Issuer: "Old", Ects: tc.old}
			got := CertificatePatch{Ects: tc.patch, Issuer: &issuer}.Apply(old)
			assert.Equal(t, Certificate{Id: 9, Title: "Cert", Issuer: "Uni", Ects: tc.want}, got)
		})
	}
}

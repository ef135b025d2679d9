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

func TestSkills_FeaturedItems(t *testing.T) {
	testCases := []struct {
		name   string
		skills Skills
		want   []FeaturedSkill
	}{
		{
			name: "没有精选",
			skills: Skills{
				Languages: []SkillItem{{Name: "Go", Level: SkillLevelAdvanced}},
			},
			want: []FeaturedSkill{},
		},
		{
			name: "按分类顺序查找",
			skills: Skills{
				Featured:   []string{"Docker", "Python"},
				Languages:  []SkillItem{{Name: "Python", Level: SkillLevelAdvanced}},
				Tools:      []SkillItem{{Name: "Docker", Level: SkillLevelIntermediate}},
				Frameworks: []SkillItem{},
			},
			want: []FeaturedSkill{
				{SkillItem: SkillItem{Name: "Docker", Level: SkillLevelIntermediate}, Category: SkillCategoryTools},
				{SkillItem: SkillItem{Name: "Python", Level: SkillLevelAdvanced}, Category: SkillCategoryLanguages},
			},
		},
		{
			name: "同名技能取第一个分类",
			skills: Skills{
				Featured:  []string{"Rust"},
				Languages: []SkillItem{{Name: "Rust", Level: SkillLevelIntermediate}},
				Learning:  []SkillItem{{Name: "Rust", Level: SkillLevelBeginner}},
			},
			want: []FeaturedSkill{
				{SkillItem: SkillItem{Name: "Rust", Level: SkillLevelIntermediate}, Category: SkillCategoryLanguages},
			},
		},
		{
			name: "只看前三个并跳过找不到的",
			skills: Skills{
				Featured:  []string{"Go", "Missing", "Java", "Python"},
				Languages: []SkillItem{{Name: "Go"}, {Name: "Java"}, {Name: "Python"}},
			},
			want: []FeaturedSkill{
				{SkillItem: SkillItem{Name: "Go"}, Category: SkillCategoryLanguages},
				{SkillItem: SkillItem{Name: "Java"}, Category: SkillCategoryLanguages},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.skills.FeaturedItems())
		})
	}
}

func TestSkills_Count(t *testing.T) {
	s := Skills{
		Featured:   []string{"Go"},
		Languages:  []SkillItem{{Name: "Go"}, {Name: "Python"}},
		Frameworks: []SkillItem{{Name: "Gin"}},
		Learning:   []SkillItem{{Name: "Rust"}},
	}
	assert.Equal(t, 4, s.Count())
}

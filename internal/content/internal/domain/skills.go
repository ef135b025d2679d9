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

import "github.com/ecodeclub/ekit/slice"

// MaxFeatured 首页最多展示的技能数量
const MaxFeatured = 3

type SkillLevel string

const (
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelBeginner     SkillLevel = "beginner"
)

type SkillCategory string

const (
	SkillCategoryLanguages  SkillCategory = "languages"
	SkillCategoryFrameworks SkillCategory = "frameworks"
	SkillCategoryTools      SkillCategory = "tools"
	SkillCategoryLearning   SkillCategory = "learning"
)

type SkillItem struct {
	Name  string
	Level SkillLevel
}

// Skills 单例文档，没有 id
type Skills struct {
	Featured   []string
	Languages  []SkillItem
	Frameworks []SkillItem
	Tools      []SkillItem
	Learning   []SkillItem
}

type FeaturedSkill struct {
	SkillItem
	Category SkillCategory
}

type categoryItems struct {
	category SkillCategory
	items    []SkillItem
}

// categories 顺序决定了同名技能归属哪个分类
func (s Skills) categories() []categoryItems {
	return []categoryItems{
		{category: SkillCategoryLanguages, items: s.Languages},
		{category: SkillCategoryFrameworks, items: s.Frameworks},
		{category: SkillCategoryTools, items: s.Tools},
		{category: SkillCategoryLearning, items: s.Learning},
	}
}

// FeaturedItems 只看前 MaxFeatured 个名字，找不到的直接跳过
func (s Skills) FeaturedItems() []FeaturedSkill {
	names := s.Featured
	if len(names) > MaxFeatured {
		names = names[:MaxFeatured]
	}
	res := make([]FeaturedSkill, 0, len(names))
	for _, name := range names {
		for _, c := range s.categories() {
			item, ok := slice.Find(c.items, func(src SkillItem) bool {
				return src.Name == name
			})
			if ok {
				res = append(res, FeaturedSkill{SkillItem: item, Category: c.category})
				break
			}
		}
	}
	return res
}

// Count 四个分类的技能总数
func (s Skills) Count() int {
	return len(s.Languages) + len(s.Frameworks) + len(s.Tools) + len(s.Learning)
}

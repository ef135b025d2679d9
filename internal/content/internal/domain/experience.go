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

type Experience struct {
	Id         int64
	Title      string
	TitleEn    string
	Company    string
	CompanyEn  string
	Location   string
	LocationEn string
	StartDate  string
	// EndDate 为 nil 代表至今
	EndDate       *string
	Current       bool
	Description   []string
	DescriptionEn []string
}

func (e Experience) ID() int64 {
	return e.Id
}

func (e Experience) WithID(id int64) Experience {
	e.Id = id
	return e
}

type ExperiencePatch struct {
	Title         *string
	TitleEn       *string
	Company       *string
	CompanyEn     *string
	Location      *string
	LocationEn    *string
	StartDate     *string
	// EndDate.Set 为 true 且 Val 为 nil 时清空结束时间
	EndDate       Nullable
	Current       *bool
	Description   []string
	DescriptionEn []string
}

func (p ExperiencePatch) Apply(old Experience) Experience {
	res := old
	setString(&res.Title, p.Title)
	setString(&res.TitleEn, p.TitleEn)
	setString(&res.Company, p.Company)
	setString(&res.CompanyEn, p.CompanyEn)
	setString(&res.Location, p.Location)
	setString(&res.LocationEn, p.LocationEn)
	setString(&res.StartDate, p.StartDate)
	if p.EndDate.Set {
		res.EndDate = p.EndDate.Val
	}
	if p.Current != nil {
		res.Current = *p.Current
	}
	setStrings(&res.Description, p.Description)
	setStrings(&res.DescriptionEn, p.DescriptionEn)
	return res
}

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

type Project struct {
	Id                int64
	Title             string
	Description       string
	DescriptionEn     string
	Image             string
	Technologies      []string
	GithubUrl         string
	LiveUrl           string
	Featured          bool
	LongDescription   string
	LongDescriptionEn string
	Date              string
	DateEn            string
	Screenshots       []string
	Challenges        []string
	ChallengesEn      []string
	Solutions         []string
	SolutionsEn       []string
}

func (p Project) ID() int64 {
	return p.Id
}

func (p Project) WithID(id int64) Project {
	p.Id = id
	return p
}

// ProjectPatch nil 代表请求里没有这个字段
type ProjectPatch struct {
	Title             *string
	Description       *string
	DescriptionEn     *string
	Image             *string
	Technologies      []string
	GithubUrl         *string
	LiveUrl           *string
	Featured          *bool
	LongDescription   *string
	LongDescriptionEn *string
	Date              *string
	DateEn            *string
	Screenshots       []string
	Challenges        []string
	ChallengesEn      []string
	Solutions         []string
	SolutionsEn       []string
}

func (p ProjectPatch) Apply(old Project) Project {
	res := old
	setString(&res.Title, p.Title)
	setString(&res.Description, p.Description)
	setString(&res.DescriptionEn, p.DescriptionEn)
	setString(&res.Image, p.Image)
	setStrings(&res.Technologies, p.Technologies)
	setString(&res.GithubUrl, p.GithubUrl)
	setString(&res.LiveUrl, p.LiveUrl)
	if p.Featured != nil {
		res.Featured = *p.Featured
	}
	setString(&res.LongDescription, p.LongDescription)
	setString(&res.LongDescriptionEn, p.LongDescriptionEn)
	setString(&res.Date, p.Date)
	setString(&res.DateEn, p.DateEn)
	setStrings(&res.Screenshots, p.Screenshots)
	setStrings(&res.Challenges, p.Challenges)
	setStrings(&res.ChallengesEn, p.ChallengesEn)
	setStrings(&res.Solutions, p.Solutions)
	setStrings(&res.SolutionsEn, p.SolutionsEn)
	return res
}

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

package dao

import "encoding/json"

// 以下结构体就是数据目录里 JSON 文件的格式

type Project struct {
	Id                int64    `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	DescriptionEn     string   `json:"descriptionEn"`
	Image             string   `json:"image,omitempty"`
	Technologies      []string `json:"technologies"`
	GithubUrl         string   `json:"githubUrl,omitempty"`
	LiveUrl           string   `json:"liveUrl,omitempty"`
	Featured          bool     `json:"featured"`
	LongDescription   string   `json:"longDescription,omitempty"`
	LongDescriptionEn string   `json:"longDescriptionEn,omitempty"`
	Date              string   `json:"date,omitempty"`
	DateEn            string   `json:"dateEn,omitempty"`
	Screenshots       []string `json:"screenshots,omitempty"`
	Challenges        []string `json:"challenges,omitempty"`
	ChallengesEn      []string `json:"challengesEn,omitempty"`
	Solutions         []string `json:"solutions,omitempty"`
	SolutionsEn       []string `json:"solutionsEn,omitempty"`
}

type Experience struct {
	Id         int64  `json:"id"`
	Title      string `json:"title"`
	TitleEn    string `json:"titleEn"`
	Company    string `json:"company"`
	CompanyEn  string `json:"companyEn"`
	Location   string `json:"location,omitempty"`
	LocationEn string `json:"locationEn,omitempty"`
	StartDate  string `json:"startDate"`
	// EndDate 总是输出，至今的工作经历是 null
	EndDate       *string  `json:"endDate"`
	Current       bool     `json:"current"`
	Description   []string `json:"description"`
	DescriptionEn []string `json:"descriptionEn"`
}

type Certificate struct {
	Id            int64      `json:"id"`
	Title         string     `json:"title"`
	TitleEn       string     `json:"titleEn"`
	Issuer        string     `json:"issuer"`
	IssuerEn      string     `json:"issuerEn"`
	Date          string     `json:"date"`
	DateEn        string     `json:"dateEn"`
	CredentialId  string     `json:"credentialId,omitempty"`
	CredentialUrl string     `json:"credentialUrl,omitempty"`
	Image         string     `json:"image,omitempty"`
	Description   string     `json:"description,omitempty"`
	DescriptionEn string     `json:"descriptionEn,omitempty"`
	// Ects 可能不存在，也可能是 null
	Ects          NullString `json:"ects,omitzero"`
}

type SkillItem struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Skills struct {
	Featured   []string    `json:"featured"`
	Languages  []SkillItem `json:"languages"`
	Frameworks []SkillItem `json:"frameworks"`
	Tools      []SkillItem `json:"tools"`
	Learning   []SkillItem `json:"learning"`
}

// NullString 区分字段不存在、null 和字符串三种情况。
// 配合 omitzero 使用，不存在的字段写回时依旧不存在。
type NullString struct {
	Set bool
	Val *string
}

func (n NullString) IsZero() bool {
	return !n.Set
}

func (n NullString) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Val)
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	n.Val = nil
	if string(data) == "null" {
		return nil
	}
	var val string
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	n.Val = &val
	return nil
}

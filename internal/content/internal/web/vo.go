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

package web

import (
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
)

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

func newProject(p domain.Project) Project {
	return Project{
		Id:                p.Id,
		Title:             p.Title,
		Description:       p.Description,
		DescriptionEn:     p.DescriptionEn,
		Image:             p.Image,
		Technologies:      nonNil(p.Technologies),
		GithubUrl:         p.GithubUrl,
		LiveUrl:           p.LiveUrl,
		Featured:          p.Featured,
		LongDescription:   p.LongDescription,
		LongDescriptionEn: p.LongDescriptionEn,
		Date:              p.Date,
		DateEn:            p.DateEn,
		Screenshots:       p.Screenshots,
		Challenges:        p.Challenges,
		ChallengesEn:      p.ChallengesEn,
		Solutions:         p.Solutions,
		SolutionsEn:       p.SolutionsEn,
	}
}

// ProjectReq 创建和更新共用，请求里的 id 会被忽略
type ProjectReq struct {
	Title             *string    `json:"title"`
	Description       *string    `json:"description"`
	DescriptionEn     *string    `json:"descriptionEn"`
	Image             NullString `json:"image"`
	Technologies      []string   `json:"technologies"`
	GithubUrl         NullString `json:"githubUrl"`
	LiveUrl           NullString `json:"liveUrl"`
	Featured          *bool      `json:"featured"`
	LongDescription   NullString `json:"longDescription"`
	LongDescriptionEn NullString `json:"longDescriptionEn"`
	Date              NullString `json:"date"`
	DateEn            NullString `json:"dateEn"`
	Screenshots       []string   `json:"screenshots"`
	Challenges        []string   `json:"challenges"`
	ChallengesEn      []string   `json:"challengesEn"`
	Solutions         []string   `json:"solutions"`
	SolutionsEn       []string   `json:"solutionsEn"`
}

func (r ProjectReq) toPatch() domain.ProjectPatch {
	return domain.ProjectPatch{
		Title:             r.Title,
		Description:       r.Description,
		DescriptionEn:     r.DescriptionEn,
		Image:             r.Image.patch(),
		Technologies:      r.Technologies,
		GithubUrl:         r.GithubUrl.patch(),
		LiveUrl:           r.LiveUrl.patch(),
		Featured:          r.Featured,
		LongDescription:   r.LongDescription.patch(),
		LongDescriptionEn: r.LongDescriptionEn.patch(),
		Date:              r.Date.patch(),
		DateEn:            r.DateEn.patch(),
		Screenshots:       r.Screenshots,
		Challenges:        r.Challenges,
		ChallengesEn:      r.ChallengesEn,
		Solutions:         r.Solutions,
		SolutionsEn:       r.SolutionsEn,
	}
}

type Experience struct {
	Id            int64    `json:"id"`
	Title         string   `json:"title"`
	TitleEn       string   `json:"titleEn"`
	Company       string   `json:"company"`
	CompanyEn     string   `json:"companyEn"`
	Location      string   `json:"location,omitempty"`
	LocationEn    string   `json:"locationEn,omitempty"`
	StartDate     string   `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	Current       bool     `json:"current"`
	Description   []string `json:"description"`
	DescriptionEn []string `json:"descriptionEn"`
}

func newExperience(e domain.Experience) Experience {
	return Experience{
		Id:            e.Id,
		Title:         e.Title,
		TitleEn:       e.TitleEn,
		Company:       e.Company,
		CompanyEn:     e.CompanyEn,
		Location:      e.Location,
		LocationEn:    e.LocationEn,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		Current:       e.Current,
		Description:   nonNil(e.Description),
		DescriptionEn: nonNil(e.DescriptionEn),
	}
}

type ExperienceReq struct {
	Title         *string    `json:"title"`
	TitleEn       *string    `json:"titleEn"`
	Company       *string    `json:"company"`
	CompanyEn     *string    `json:"companyEn"`
	Location      NullString `json:"location"`
	LocationEn    NullString `json:"locationEn"`
	StartDate     *string    `json:"startDate"`
	EndDate       NullString `json:"endDate"`
	Current       *bool      `json:"current"`
	Description   []string   `json:"description"`
	DescriptionEn []string   `json:"descriptionEn"`
}

func (r ExperienceReq) toPatch() domain.ExperiencePatch {
	return domain.ExperiencePatch{
		Title:         r.Title,
		TitleEn:       r.TitleEn,
		Company:       r.Company,
		CompanyEn:     r.CompanyEn,
		Location:      r.Location.patch(),
		LocationEn:    r.LocationEn.patch(),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate.nullable(),
		Current:       r.Current,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
	}
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
	Ects          NullString `json:"ects,omitzero"`
}

func newCertificate(c domain.Certificate) Certificate {
	return Certificate{
		Id:            c.Id,
		Title:         c.Title,
		TitleEn:       c.TitleEn,
		Issuer:        c.Issuer,
		IssuerEn:      c.IssuerEn,
		Date:          c.Date,
		DateEn:        c.DateEn,
		CredentialId:  c.CredentialId,
		CredentialUrl: c.CredentialUrl,
		Image:         c.Image,
		Description:   c.Description,
		DescriptionEn: c.DescriptionEn,
		Ects:          NullString{Set: c.Ects.Set, Val: c.Ects.Val},
	}
}

type CertificateReq struct {
	Title         *string    `json:"title"`
	TitleEn       *string    `json:"titleEn"`
	Issuer        *string    `json:"issuer"`
	IssuerEn      *string    `json:"issuerEn"`
	Date          *string    `json:"date"`
	DateEn        *string    `json:"dateEn"`
	CredentialId  NullString `json:"credentialId"`
	CredentialUrl NullString `json:"credentialUrl"`
	Image         NullString `json:"image"`
	Description   NullString `json:"description"`
	DescriptionEn NullString `json:"descriptionEn"`
	Ects          NullString `json:"ects"`
}

func (r CertificateReq) toPatch() domain.CertificatePatch {
	return domain.CertificatePatch{
		Title:         r.Title,
		TitleEn:       r.TitleEn,
		Issuer:        r.Issuer,
		IssuerEn:      r.IssuerEn,
		Date:          r.Date,
		DateEn:        r.DateEn,
		CredentialId:  r.CredentialId.patch(),
		CredentialUrl: r.CredentialUrl.patch(),
		Image:         r.Image.patch(),
		Description:   r.Description.patch(),
		DescriptionEn: r.DescriptionEn.patch(),
		Ects:          r.Ects.nullable(),
	}
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

func newSkills(s domain.Skills) Skills {
	return Skills{
		Featured:   nonNil(s.Featured),
		Languages:  newSkillItems(s.Languages),
		Frameworks: newSkillItems(s.Frameworks),
		Tools:      newSkillItems(s.Tools),
		Learning:   newSkillItems(s.Learning),
	}
}

func newSkillItems(items []domain.SkillItem) []SkillItem {
	return slice.Map(items, func(idx int, src domain.SkillItem) SkillItem {
		return SkillItem{Name: src.Name, Level: string(src.Level)}
	})
}

func (s Skills) toDomain() domain.Skills {
	return domain.Skills{
		Featured:   s.Featured,
		Languages:  toSkillItems(s.Languages),
		Frameworks: toSkillItems(s.Frameworks),
		Tools:      toSkillItems(s.Tools),
		Learning:   toSkillItems(s.Learning),
	}
}

func toSkillItems(items []SkillItem) []domain.SkillItem {
	return slice.Map(items, func(idx int, src SkillItem) domain.SkillItem {
		return domain.SkillItem{Name: src.Name, Level: domain.SkillLevel(src.Level)}
	})
}

type FeaturedSkill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

func newFeaturedSkill(s domain.FeaturedSkill) FeaturedSkill {
	return FeaturedSkill{
		Name:     s.Name,
		Level:    string(s.Level),
		Category: string(s.Category),
	}
}

type Summary struct {
	Projects         int `json:"projects"`
	FeaturedProjects int `json:"featuredProjects"`
	Experience       int `json:"experience"`
	Certificates     int `json:"certificates"`
	Skills           int `json:"skills"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

// NullString 区分字段没传和显式传了 null，null 会清空原来的值
type NullString struct {
	Set bool
	Val *string
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Val = nil
		return nil
	}
	var val string
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	n.Val = &val
	return nil
}

func (n NullString) IsZero() bool {
	return !n.Set
}

func (n NullString) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.Val)
}

// nullable 保留 null，不转换成空字符串
func (n NullString) nullable() domain.Nullable {
	return domain.Nullable{Set: n.Set, Val: n.Val}
}

func (n NullString) patch() *string {
	if !n.Set {
		return nil
	}
	if n.Val == nil {
		empty := ""
		return &empty
	}
	return n.Val
}

func nonNil[T any](src []T) []T {
	if src == nil {
		return []T{}
	}
	return src
}

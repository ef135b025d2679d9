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

type Certificate struct {
	Id            int64
	Title         string
	TitleEn       string
	Issuer        string
	IssuerEn      string
	Date          string
	DateEn        string
	CredentialId  string
	CredentialUrl string
	Image         string
	Description   string
	DescriptionEn string
	Ects          Nullable
}

func (c Certificate) ID() int64 {
	return c.Id
}

func (c Certificate) WithID(id int64) Certificate {
	c.Id = id
	return c
}

type CertificatePatch struct {
	Title         *string
	TitleEn       *string
	Issuer        *string
	IssuerEn      *string
	Date          *string
	DateEn        *string
	CredentialId  *string
	CredentialUrl *string
	Image         *string
	Description   *string
	DescriptionEn *string
	Ects          Nullable
}

func (p CertificatePatch) Apply(old Certificate) Certificate {
	res := old
	setString(&res.Title, p.Title)
	setString(&res.TitleEn, p.TitleEn)
	setString(&res.Issuer, p.Issuer)
	setString(&res.IssuerEn, p.IssuerEn)
	setString(&res.Date, p.Date)
	setString(&res.DateEn, p.DateEn)
	setString(&res.CredentialId, p.CredentialId)
	setString(&res.CredentialUrl, p.CredentialUrl)
	setString(&res.Image, p.Image)
	setString(&res.Description, p.Description)
	setString(&res.DescriptionEn, p.DescriptionEn)
	setNullable(&res.Ects, p.Ects)
	return res
}

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

import (
	"context"

	"github.com/ecodeclub/portfolio/internal/pkg/jsonstore"
)

const (
	ProjectDocument     = "projects.json"
	ExperienceDocument  = "experience.json"
	CertificateDocument = "certificates.json"
	SkillsDocument      = "skills.json"
)

// DocumentDAO 一个集合对应一个 JSON 数组文档，每次都是整体读写
type DocumentDAO[E any] interface {
	Find(ctx context.Context) ([]E, error)
	Save(ctx context.Context, entities []E) error
	// Lock 锁住整个文档，返回解锁函数
	Lock() func()
}

type (
	ProjectDAO     = DocumentDAO[Project]
	ExperienceDAO  = DocumentDAO[Experience]
	CertificateDAO = DocumentDAO[Certificate]
)

type fileDocumentDAO[E any] struct {
	store *jsonstore.Store
	name  string
}

func NewProjectDAO(store *jsonstore.Store) ProjectDAO {
	return &fileDocumentDAO[Project]{store: store, name: ProjectDocument}
}

func NewExperienceDAO(store *jsonstore.Store) ExperienceDAO {
	return &fileDocumentDAO[Experience]{store: store, name: ExperienceDocument}
}

func NewCertificateDAO(store *jsonstore.Store) CertificateDAO {
	return &fileDocumentDAO[Certificate]{store: store, name: CertificateDocument}
}

func (d *fileDocumentDAO[E]) Find(ctx context.Context) ([]E, error) {
	var res []E
	err := d.store.Read(ctx, d.name, &res)
	if res == nil {
		res = []E{}
	}
	return res, err
}

func (d *fileDocumentDAO[E]) Save(ctx context.Context, entities []E) error {
	if entities == nil {
		entities = []E{}
	}
	return d.store.Write(ctx, d.name, entities)
}

func (d *fileDocumentDAO[E]) Lock() func() {
	return d.store.Lock(d.name)
}

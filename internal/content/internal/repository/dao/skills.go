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

type SkillsDAO interface {
	Get(ctx context.Context) (Skills, error)
	Save(ctx context.Context, skills Skills) error
}

type fileSkillsDAO struct {
	store *jsonstore.Store
}

func NewSkillsDAO(store *jsonstore.Store) SkillsDAO {
	return &fileSkillsDAO{store: store}
}

func (d *fileSkillsDAO) Get(ctx context.Context) (Skills, error) {
	var res Skills
	err := d.store.Read(ctx, SkillsDocument, &res)
	return res, err
}

func (d *fileSkillsDAO) Save(ctx context.Context, skills Skills) error {
	return d.store.Write(ctx, SkillsDocument, skills)
}

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

package service

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository"
	"github.com/pkg/errors"
)

var ErrRecordNotFound = errors.New("记录不存在")

// CollectionService 项目、工作经历、证书共用的增删改查。
// 每个操作都会重新读取整个文档，修改类操作会整体写回
type CollectionService[T domain.Record[T], P domain.Patch[T]] interface {
	List(ctx context.Context) ([]T, error)
	Detail(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, patch P) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type (
	ProjectService     = CollectionService[domain.Project, domain.ProjectPatch]
	ExperienceService  = CollectionService[domain.Experience, domain.ExperiencePatch]
	CertificateService = CollectionService[domain.Certificate, domain.CertificatePatch]
)

type collectionService[T domain.Record[T], P domain.Patch[T]] struct {
	repo repository.CollectionRepository[T]
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &collectionService[domain.Project, domain.ProjectPatch]{repo: repo}
}

func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &collectionService[domain.Experience, domain.ExperiencePatch]{repo: repo}
}

func NewCertificateService(repo repository.CertificateRepository) CertificateService {
	return &collectionService[domain.Certificate, domain.CertificatePatch]{repo: repo}
}

func (s *collectionService[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *collectionService[T, P]) Detail(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := s.repo.List(ctx)
	if err != nil {
		return zero, err
	}
	item, ok := slice.Find(items, func(src T) bool {
		return domain.MatchID(src.ID(), id)
	})
	if !ok {
		return zero, errors.Wrapf(ErrRecordNotFound, "id %s", id)
	}
	return item, nil
}

func (s *collectionService[T, P]) Create(ctx context.Context, patch P) (T, error) {
	var zero T
	unlock := s.repo.Lock()
	defer unlock()
	items, err := s.repo.List(ctx)
	if err != nil {
		return zero, err
	}
	// 每次都根据刚读到的文档计算 id，外部改过文件也不会冲突
	item := patch.Apply(zero).WithID(domain.NextID(items))
	items = append(items, item)
	if err = s.repo.Save(ctx, items); err != nil {
		return zero, err
	}
	return item, nil
}

func (s *collectionService[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	unlock := s.repo.Lock()
	defer unlock()
	items, err := s.repo.List(ctx)
	if err != nil {
		return zero, err
	}
	idx := s.indexOf(items, id)
	if idx < 0 {
		return zero, errors.Wrapf(ErrRecordNotFound, "id %s", id)
	}
	old := items[idx]
	items[idx] = patch.Apply(old).WithID(old.ID())
	if err = s.repo.Save(ctx, items); err != nil {
		return zero, err
	}
	return items[idx], nil
}

func (s *collectionService[T, P]) Delete(ctx context.Context, id string) error {
	unlock := s.repo.Lock()
	defer unlock()
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if s.indexOf(items, id) < 0 {
		return errors.Wrapf(ErrRecordNotFound, "id %s", id)
	}
	// 同一个 id 出现多次时全部删除
	items = slice.FindAll(items, func(src T) bool {
		return !domain.MatchID(src.ID(), id)
	})
	return s.repo.Save(ctx, items)
}

func (s *collectionService[T, P]) indexOf(items []T, id string) int {
	for i, item := range items {
		if domain.MatchID(item.ID(), id) {
			return i
		}
	}
	return -1
}

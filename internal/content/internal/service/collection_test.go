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
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/content/internal/domain"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository"
	"github.com/ecodeclub/portfolio/internal/content/internal/repository/dao"
	"github.com/ecodeclub/portfolio/internal/pkg/jsonstore"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(store *jsonstore.Store) ProjectService {
	return NewProjectService(repository.NewProjectRepository(dao.NewProjectDAO(store)))
}

func newExperienceService(store *jsonstore.Store) ExperienceService {
	return NewExperienceService(repository.NewExperienceRepository(dao.NewExperienceDAO(store)))
}

func strPtr(s string) *string {
	return &s
}

func writeProjects(t *testing.T, store *jsonstore.Store, projects ...dao.Project) {
	err := store.Write(context.Background(), dao.ProjectDocument, projects)
	require.NoError(t, err)
}

func TestCollectionService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		before  func(t *testing.T, store *jsonstore.Store)
		patch   domain.ProjectPatch
		want    domain.Project
		wantErr error
	}{
		{
			name:   "空集合从 1 开始",
			before: func(t *testing.T, store *jsonstore.Store) {},
			patch: domain.ProjectPatch{
				Title:        strPtr("X"),
				Technologies: []string{"Go"},
			},
			want: domain.Project{Id: 1, Title: "X", Technologies: []string{"Go"}},
		},
		{
			name: "最大值加一",
			before: func(t *testing.T, store *jsonstore.Store) {
				writeProjects(t, store, dao.Project{Id: 5, Title: "five"}, dao.Project{Id: 2, Title: "two"})
			},
			patch: domain.ProjectPatch{Title: strPtr("six"), Technologies: []string{}},
			want:  domain.Project{Id: 6, Title: "six", Technologies: []string{}},
		},
		{
			name: "文件损坏",
			before: func(t *testing.T, store *jsonstore.Store) {
				err := os.WriteFile(filepath.Join(store.Dir(), dao.ProjectDocument), []byte("{"), 0o644)
				require.NoError(t, err)
			},
			patch:   domain.ProjectPatch{Title: strPtr("X")},
			wantErr: jsonstore.ErrInvalidDocument,
		},
		{
			name: "文件不存在",
			before: func(t *testing.T, store *jsonstore.Store) {
				err := os.Remove(filepath.Join(store.Dir(), dao.ProjectDocument))
				require.NoError(t, err)
			},
			patch:   domain.ProjectPatch{Title: strPtr("X")},
			wantErr: jsonstore.ErrDocumentNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := testioc.InitStore(t)
			tc.before(t, store)
			svc := newProjectService(store)
			ctx := context.Background()
			p, err := svc.Create(ctx, tc.patch)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, p)
			found, err := svc.Detail(ctx, strconv.FormatInt(p.Id, 10))
			require.NoError(t, err)
			assert.Equal(t, tc.want, found)
		})
	}
}

func TestCollectionService_CreateTwice(t *testing.T) {
	svc := newProjectService(testioc.InitStore(t))
	ctx := context.Background()
	first, err := svc.Create(ctx, domain.ProjectPatch{Title: strPtr("a")})
	require.NoError(t, err)
	second, err := svc.Create(ctx, domain.ProjectPatch{Title: strPtr("b")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Id)
	assert.Equal(t, int64(2), second.Id)

	// 删除的 id 不会被复用
	require.NoError(t, svc.Delete(ctx, "1"))
	third, err := svc.Create(ctx, domain.ProjectPatch{Title: strPtr("c")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.Id)
}

func TestCollectionService_Update(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		patch   domain.ProjectPatch
		want    domain.Project
		wantErr error
	}{
		{
			name:  "浅合并",
			id:    "5",
			patch: domain.ProjectPatch{Title: strPtr("new"), LiveUrl: strPtr("https://example.com")},
			want: domain.Project{
				Id:           5,
				Title:        "new",
				Description:  "desc",
				Technologies: []string{"Go"},
				LiveUrl:      "https://example.com",
			},
		},
		{
			name:    "id 不存在",
			id:      "7",
			patch:   domain.ProjectPatch{Title: strPtr("new")},
			wantErr: ErrRecordNotFound,
		},
		{
			name:    "id 不是数字",
			id:      "abc",
			patch:   domain.ProjectPatch{Title: strPtr("new")},
			wantErr: ErrRecordNotFound,
		},
		{
			name:    "按字符串比较",
			id:      "05",
			patch:   domain.ProjectPatch{Title: strPtr("new")},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := testioc.InitStore(t)
			writeProjects(t, store,
				dao.Project{Id: 2, Title: "two", Technologies: []string{}},
				dao.Project{Id: 5, Title: "five", Description: "desc", Technologies: []string{"Go"}},
			)
			svc := newProjectService(store)
			ctx := context.Background()
			p, err := svc.Update(ctx, tc.id, tc.patch)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, p)
			projects, err := svc.List(ctx)
			require.NoError(t, err)
			// 顺序不变
			assert.Equal(t, []int64{2, 5}, slice.Map(projects, func(idx int, src domain.Project) int64 {
				return src.Id
			}))
			assert.Equal(t, tc.want, projects[1])
		})
	}
}

func TestCollectionService_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		wantIDs []int64
		wantErr error
	}{
		{
			name:    "删除一条",
			id:      "5",
			wantIDs: []int64{2, 9},
		},
		{
			name:    "id 不存在",
			id:      "6",
			wantIDs: []int64{2, 5, 9},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := testioc.InitStore(t)
			writeProjects(t, store, dao.Project{Id: 2}, dao.Project{Id: 5}, dao.Project{Id: 9})
			svc := newProjectService(store)
			ctx := context.Background()
			err := svc.Delete(ctx, tc.id)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			projects, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIDs, slice.Map(projects, func(idx int, src domain.Project) int64 {
				return src.Id
			}))
		})
	}
}

func TestCollectionService_ConcurrentCreate(t *testing.T) {
	svc := newExperienceService(testioc.InitStore(t))
	ctx := context.Background()
	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := svc.Create(ctx, domain.ExperiencePatch{Title: strPtr(strconv.Itoa(i))})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
	ids := slice.ToMap(list, func(src domain.Experience) int64 {
		return src.Id
	})
	assert.Len(t, ids, n)
}

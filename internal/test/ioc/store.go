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

package testioc

import (
	"context"
	"testing"

	"github.com/ecodeclub/portfolio/internal/pkg/jsonstore"
	"github.com/stretchr/testify/require"
)

// InitStore 在临时目录里准备好四个空文档
func InitStore(t testing.TB) *jsonstore.Store {
	store := jsonstore.NewStore(t.TempDir())
	ResetStore(t, store)
	return store
}

// ResetStore 把文档恢复成初始状态
func ResetStore(t testing.TB, store *jsonstore.Store) {
	ctx := context.Background()
	for _, name := range []string{"projects.json", "experience.json", "certificates.json"} {
		require.NoError(t, store.Write(ctx, name, []any{}))
	}
	require.NoError(t, store.Write(ctx, "skills.json", map[string]any{
		"featured":   []string{},
		"languages":  []any{},
		"frameworks": []any{},
		"tools":      []any{},
		"learning":   []any{},
	}))
}

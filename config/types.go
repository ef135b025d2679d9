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

package config

import "strings"

const EnvProduction = "production"

type PortfolioConfig struct {
	// DataDir 存放 projects.json 等文档
	DataDir string `yaml:"dataDir"`
	// PublicDir 上传文件的根目录，也会作为静态目录对外提供
	PublicDir string `yaml:"publicDir"`
	// AdminDir 管理后台页面，可以不配置
	AdminDir string `yaml:"adminDir"`
	Env      string `yaml:"env"`
}

func (c PortfolioConfig) Production() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), EnvProduction)
}

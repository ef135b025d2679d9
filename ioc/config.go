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

package ioc

import (
	"os"

	"github.com/ecodeclub/portfolio/config"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const envKey = "APP_ENV"

// InitPortfolioConfig 读取 portfolio 配置，环境变量 APP_ENV 优先于配置文件
func InitPortfolioConfig() config.PortfolioConfig {
	cfg := config.PortfolioConfig{
		DataDir:   "./data",
		PublicDir: "./public",
		Env:       "development",
	}
	err := econf.UnmarshalKey("portfolio", &cfg)
	if err != nil {
		panic(err)
	}
	if env, ok := os.LookupEnv(envKey); ok && env != "" {
		cfg.Env = env
	}
	elog.DefaultLogger.Info("加载配置",
		elog.String("dataDir", cfg.DataDir),
		elog.String("publicDir", cfg.PublicDir),
		elog.String("env", cfg.Env),
		elog.Any("adminExposed", !cfg.Production()))
	return cfg
}

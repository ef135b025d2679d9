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
	"net/http"

	"github.com/ecodeclub/portfolio/internal/upload/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	msgMissingField  = "send 'file' and 'folder' (projects or certificates)"
	msgInvalidFolder = "folder must be 'projects' or 'certificates'"
	msgUploadFailed  = "failed to upload file"
)

type Handler struct {
	sink   service.Sink
	logger *elog.Component
}

func NewHandler(sink service.Sink) *Handler {
	return &Handler{
		sink:   sink,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/admin/upload", h.Upload)
}

// Upload multipart 表单，字段 file 和 folder
func (h *Handler) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	folder := ctx.PostForm("folder")
	if err != nil || folder == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msgMissingField})
		return
	}
	f, err := service.ParseFolder(folder)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidFolder})
		return
	}
	src, err := fh.Open()
	if err != nil {
		h.systemError(ctx, err)
		return
	}
	defer src.Close()
	path, err := h.sink.Save(ctx, f, fh.Filename, src)
	if err != nil {
		h.systemError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"path": path})
}

func (h *Handler) systemError(ctx *gin.Context, err error) {
	h.logger.Error(msgUploadFailed, elog.FieldErr(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgUploadFailed})
}

package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"recruit-track-backend/controllers"
	candidatehandler "recruit-track-backend/lib/candidate"
	candidatehistoryhandler "recruit-track-backend/lib/candidate-history"
	pdfexport "recruit-track-backend/lib/export/pdf"
	xlsexport "recruit-track-backend/lib/export/xls"
	filestorage "recruit-track-backend/lib/file-storage"
	"recruit-track-backend/middleware"
	apimodels "recruit-track-backend/models/api"
	candidateapimodels "recruit-track-backend/models/api/candidate"
	filesapimodels "recruit-track-backend/models/api/files"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route("export", func(exportRoute fiber.Router) {
			exportRoute.Post("xlsx", controller.exportXlsx)
			exportRoute.Post("pdf", controller.exportPdf)
		})
		router.Get("doc/:id", controller.downloadDoc)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Get("status-history", controller.statusHistory)
			idRoute.Post("cv", controller.uploadCV)
			idRoute.Get("cv", controller.downloadCV)
			idRoute.Post("doc", controller.uploadDoc)
			idRoute.Get("doc/list", controller.docList)
		})
	})
}

// @Summary Create candidate
// @Tags Candidates
// @Description Create candidate, the initial status history row is written along
// @Param	body	body	candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := candidatehandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get candidate by ID
// @Tags Candidates
// @Description Get candidate by ID, hiring request populated
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update candidate
// @Tags Candidates
// @Description Update candidate, a status change appends one history row
// @Param   id	path	string	true	"rec ID"
// @Param	body	body	candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	err = candidatehandler.Instance.Update(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidates
// @Description Delete candidate
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = candidatehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate deletion failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Candidate list
// @Tags Candidates
// @Description Candidate list with filter and paging
// @Param	body	body	candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/list [post]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, rowCount, err := candidatehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(resp, rowCount))
}

// @Summary Candidate status history
// @Tags Candidates
// @Description Status transitions for the candidate, newest first
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.StatusHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/status-history [get]
func (c *candidateApiController) statusHistory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := candidatehistoryhandler.Instance.List(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate status history failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Upload candidate CV
// @Tags Candidates
// @Description Upload candidate CV
// @Param   id	path	string	true	"rec ID"
// @Param   cv	formData	file	true	"CV file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/cv [post]
func (c *candidateApiController) uploadCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if _, err = candidatehandler.Instance.GetByID(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate lookup failed")
	}

	file, err := ctx.FormFile("cv")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "cv file open failed")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "cv file read failed")
	}

	fileID, err := filestorage.Instance.UploadCV(ctx.UserContext(), id, file.Filename, file.Header.Get(fiber.HeaderContentType), fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "cv upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Download candidate CV
// @Tags Candidates
// @Description Download the latest uploaded CV of the candidate
// @Param   id	path	string	true	"rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/cv [get]
func (c *candidateApiController) downloadCV(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, body, err := filestorage.Instance.GetCV(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "cv download failed")
	}
	if file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return ctx.Send(body)
}

// @Summary Upload candidate document
// @Tags Candidates
// @Description Attach an additional document to the candidate
// @Param   id	path	string	true	"rec ID"
// @Param   doc	formData	file	true	"document file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/doc [post]
func (c *candidateApiController) uploadDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if _, err = candidatehandler.Instance.GetByID(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate lookup failed")
	}

	file, err := ctx.FormFile("doc")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document open failed")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document read failed")
	}

	fileID, err := filestorage.Instance.UploadDoc(ctx.UserContext(), id, file.Filename, file.Header.Get(fiber.HeaderContentType), fileBody)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Candidate document list
// @Tags Candidates
// @Description Documents attached to the candidate, newest first
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]filesapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/{id}/doc/list [get]
func (c *candidateApiController) docList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := filestorage.Instance.GetDocList(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document list failed")
	}
	result := make([]filesapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Download candidate document
// @Tags Candidates
// @Description Download one attached document by its file ID
// @Param   id	path	string	true	"file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/doc/{id} [get]
func (c *candidateApiController) downloadDoc(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, body, err := filestorage.Instance.GetFile(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document download failed")
	}
	if file.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, file.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	return ctx.Send(body)
}

// @Summary Export candidates to XLSX
// @Tags Candidates
// @Description Export the filtered candidate list to an Excel file
// @Param	body	body	candidateapimodels.CandidateFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/export/xlsx [post]
func (c *candidateApiController) exportXlsx(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := candidatehandler.Instance.ListAll(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate export failed")
	}
	data, err := xlsexport.Instance.ExportCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "xlsx export failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.xlsx"`)
	return ctx.SendStream(data)
}

// @Summary Export candidates to PDF
// @Tags Candidates
// @Description Export the filtered candidate list to a PDF file
// @Param	body	body	candidateapimodels.CandidateFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/candidates/export/pdf [post]
func (c *candidateApiController) exportPdf(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, err := candidatehandler.Instance.ListAll(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate export failed")
	}
	data, err := pdfexport.GenerateCandidateList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "pdf export failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="candidates.pdf"`)
	return ctx.Send(data)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/product-variations/internal/models"
)

const indexTemplate = "index.html"

type formValues struct {
	Prompt         string
	VariationCount string
	SizingMode     string
	AspectRatio    string
	Width          string
	Height         string
}

func defaultForm() formValues {
	return formValues{
		VariationCount: "1",
		SizingMode:     string(models.SizingAspectRatio),
		AspectRatio:    models.AspectRatioOptions[0].Value,
		Width:          strconv.Itoa(models.DefaultCustomWidth),
		Height:         strconv.Itoa(models.DefaultCustomHeight),
	}
}

// submittedForm echoes what the user sent so the form keeps its state after a POST.
func submittedForm(c *gin.Context) formValues {
	form := defaultForm()
	form.Prompt = c.PostForm("prompt")
	if v := c.PostForm("variation_count"); v != "" {
		form.VariationCount = v
	}
	if mode, ok := models.ParseSizingMode(c.PostForm("sizing_mode")); ok {
		form.SizingMode = string(mode)
	}
	if ratio, ok := models.ResolveAspectRatio(c.PostForm("aspect_ratio")); ok {
		form.AspectRatio = ratio
	}
	if v := c.PostForm("width"); v != "" {
		form.Width = v
	}
	if v := c.PostForm("height"); v != "" {
		form.Height = v
	}
	return form
}

func (h *VariationHandler) Index(c *gin.Context) {
	h.renderPage(c, http.StatusOK, defaultForm(), nil, "")
}

func (h *VariationHandler) GenerateForm(c *gin.Context) {
	form := submittedForm(c)

	req, err := h.parseGenerationRequest(c)
	if err != nil {
		h.renderPage(c, http.StatusBadRequest, form, nil, err.Error())
		return
	}

	result := h.generator.Generate(c.Request.Context(), req)
	if !result.OK() {
		h.renderPage(c, statusForFailure(result.Failure), form, nil, result.Failure.Message)
		return
	}

	h.renderPage(c, http.StatusOK, form, result.URLs(), "")
}

func (h *VariationHandler) renderPage(c *gin.Context, status int, form formValues, urls []string, errMsg string) {
	c.HTML(status, indexTemplate, gin.H{
		"Form":         form,
		"AspectRatios": models.AspectRatioOptions,
		"URLs":         urls,
		"Error":        errMsg,
	})
}

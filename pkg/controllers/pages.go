package controllers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendlens/backend/pkg/effects"
	"github.com/spendlens/backend/pkg/importer/parser/statement"
	"github.com/spendlens/backend/pkg/models"
)

// PageData is passed to the page templates.
type PageData struct {
	Title  string
	Player *effects.Lottie // Lottie player mounted by the landing page
}

// RegisterPageRoutes registers the HTML pages and the statement upload.
func (co Controller) RegisterPageRoutes(r *gin.RouterGroup) {
	r.GET("/", GetLanding)
	r.GET("/home", GetHome)
	r.GET("/dashboard", GetDashboard)
	r.POST("/upload", co.Upload)
}

// GetLanding renders the landing page.
func GetLanding(c *gin.Context) {
	player := effects.LandingLottie
	c.HTML(http.StatusOK, "landing.html", PageData{Title: "Welcome", Player: &player})
}

// GetHome renders the upload page.
func GetHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", PageData{Title: "Upload"})
}

// GetDashboard renders the dashboard.
func GetDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", PageData{Title: "Dashboard"})
}

// Upload stores a statement CSV as the latest upload.
//
// Errors are sent as plain text, a successful upload redirects to the dashboard.
//
//	@Summary		Upload statement
//	@Description	Imports a bank statement CSV. The upload replaces the data shown on the dashboard.
//	@Tags			Statements
//	@Accept			multipart/form-data
//	@Produce		plain
//	@Param			file	formData	file	true	"Statement CSV"
//	@Success		302
//	@Failure		400	{string}	string
//	@Failure		500	{string}	string
//	@Router			/upload [post]
func (co Controller) Upload(c *gin.Context) {
	file, err := uploadedFile(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	f, err := file.Open()
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()

	rows, err := statement.Parse(f)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	upload := models.Upload{
		Filename:     filepath.Base(file.Filename),
		Transactions: make([]models.Transaction, 0, len(rows)),
	}
	for i, row := range rows {
		upload.Transactions = append(upload.Transactions, row.Transaction(i, co.Categorizer.Categorize(row.Description)))
	}

	err = models.DB.Create(&upload).Error
	if err != nil {
		c.String(status(err), err.Error())
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Str("filename", upload.Filename).Int("transactions", len(rows)).Msg("statement uploaded")
	c.Redirect(http.StatusFound, "/dashboard")
}

// uploadedFile returns the statement file of an upload request.
func uploadedFile(c *gin.Context) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errNoFilePart
	}

	files := form.File["file"]
	if len(files) == 0 {
		// Parts without a filename are parsed as values
		if _, ok := form.Value["file"]; ok {
			return nil, errNoSelectedFile
		}
		return nil, errNoFilePart
	}

	file := files[0]
	if file.Filename == "" {
		return nil, errNoSelectedFile
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return nil, errInvalidFile
	}

	return file, nil
}

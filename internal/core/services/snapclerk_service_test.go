package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/booksclient/internal/core/services"
	"github.com/ledgerline/booksclient/internal/dto"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils"
)

func newSnapClerkService(t *testing.T, routes func(*gin.Engine)) *services.SnapClerkService {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	api := rest.New(rest.Options{BaseURL: srv.URL})
	return services.NewSnapClerkService(api, staticScope(7), utils.NewTrack("", nil))
}

func TestSnapClerkUsage(t *testing.T) {
	svc := newSnapClerkService(t, func(r *gin.Engine) {
		r.GET("/api/v3/7/snapclerk/usage", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"count": 14})
		})
	})

	count, err := svc.Usage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 14, count)
}

func TestSnapClerkCreateByFileID(t *testing.T) {
	var gotFileID uint
	svc := newSnapClerkService(t, func(r *gin.Engine) {
		r.POST("/api/v3/7/snapclerk/add-by-file-id", func(c *gin.Context) {
			var body struct {
				FileID uint `json:"file_id"`
			}
			require.NoError(t, c.BindJSON(&body))
			gotFileID = body.FileID
			c.JSON(http.StatusCreated, gin.H{"id": 3, "status": "Pending", "file_id": body.FileID})
		})
	})

	sc, err := svc.CreateByFileID(context.Background(), 88)

	require.NoError(t, err)
	assert.Equal(t, uint(88), gotFileID)
	assert.Equal(t, uint(3), sc.ID)
}

func TestSnapClerkUploadSendsHints(t *testing.T) {
	var gotNote, gotCategory, gotFile string
	svc := newSnapClerkService(t, func(r *gin.Engine) {
		r.POST("/api/v3/7/snapclerk", func(c *gin.Context) {
			file, err := c.FormFile("file")
			require.NoError(t, err)
			gotFile = file.Filename
			gotNote = c.PostForm("note")
			gotCategory = c.PostForm("category")
			c.JSON(http.StatusCreated, gin.H{"id": 4, "status": "Pending"})
		})
	})

	req := dto.SnapClerkUploadRequest{
		FileName: "receipt.jpg",
		Category: "Meals",
		Note:     "team lunch",
	}
	sc, err := svc.Upload(context.Background(), strings.NewReader("jpeg bytes"), req)

	require.NoError(t, err)
	assert.Equal(t, uint(4), sc.ID)
	assert.Equal(t, "receipt.jpg", gotFile)
	assert.Equal(t, "team lunch", gotNote)
	assert.Equal(t, "Meals", gotCategory)
}

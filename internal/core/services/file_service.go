package services

import (
	"context"
	"fmt"
	"io"

	"github.com/ledgerline/booksclient/internal/core/domain"
	ports "github.com/ledgerline/booksclient/internal/core/ports/services"
	"github.com/ledgerline/booksclient/internal/platform/rest"
	"github.com/ledgerline/booksclient/internal/utils/mapping"
	"github.com/ledgerline/booksclient/internal/wire"
)

// FileService uploads attachments that ledger entries and receipts
// reference by id.
type FileService struct {
	BaseService
	api   *rest.Client
	scope ports.AccountScope
}

func NewFileService(api *rest.Client, scope ports.AccountScope) *FileService {
	return &FileService{api: api, scope: scope}
}

// UploadFile streams one multipart upload. progress may be nil; when set it
// receives the running byte count as the body is read.
func (s *FileService) UploadFile(ctx context.Context, r io.Reader, name string, progress func(sent int64)) (domain.File, error) {
	path := fmt.Sprintf("/api/v3/%d/files", s.scope.ActiveAccountID())

	var resp wire.File
	if err := s.api.Upload(ctx, path, "file", name, r, nil, progress, &resp); err != nil {
		return domain.File{}, err
	}
	return mapping.ToDomainFile(resp), nil
}

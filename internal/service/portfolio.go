package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/deppfellow/member-directory/internal/errs"
	"github.com/deppfellow/member-directory/internal/lib/imagetype"
	"github.com/deppfellow/member-directory/internal/repository"
)

// MaxImageSize bounds a portfolio upload.
const MaxImageSize = 5 << 20

// PortfolioService accepts and serves portfolio images.
type PortfolioService struct {
	members    repository.MemberRepository
	classifier imagetype.Classifier
	logger     *zerolog.Logger
}

func NewPortfolioService(members repository.MemberRepository, classifier imagetype.Classifier, logger *zerolog.Logger) *PortfolioService {
	return &PortfolioService{members: members, classifier: classifier, logger: logger}
}

// UploadImage reads the image from r, checks it is PNG, JPEG or JPEG 2000
// and stores it for memberID. A rejected format wraps
// imagetype.ErrInvalidFileType under kind Invalid.
func (s *PortfolioService) UploadImage(ctx context.Context, memberID int64, r io.Reader) (imagetype.Format, error) {
	const op = "portfolio.upload_image"

	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", errs.E(op, errs.Unknown, fmt.Errorf("failed to read image: %w", err))
	}
	if len(data) > MaxImageSize {
		return "", errs.E(op, errs.Invalid, fmt.Errorf("image exceeds %d bytes", MaxImageSize))
	}

	format, err := s.classifier.Classify(data)
	if err != nil {
		return "", errs.E(op, errs.Invalid, err)
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return "", err
	}
	if member == nil {
		return "", errs.E(op, errs.NotFound, nil)
	}

	if err := s.members.SetImage(ctx, memberID, data); err != nil {
		return "", err
	}

	s.logger.Info().Int64("member_id", memberID).Str("format", string(format)).Int("bytes", len(data)).Msg("portfolio image stored")
	return format, nil
}

// Image returns the stored image and its MIME type. A member without an
// image is NotFound.
func (s *PortfolioService) Image(ctx context.Context, memberID int64) ([]byte, string, error) {
	const op = "portfolio.image"

	data, err := s.members.GetImage(ctx, memberID)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errs.E(op, errs.NotFound, nil)
	}

	format, err := s.classifier.Classify(data)
	if errors.Is(err, imagetype.ErrInvalidFileType) {
		// Rows written outside this service may hold any bytes.
		return data, imagetype.Format("").MIME(), nil
	}
	if err != nil {
		return nil, "", errs.E(op, errs.Unknown, err)
	}

	return data, format.MIME(), nil
}

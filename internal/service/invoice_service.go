package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/google/uuid"

	"ekthaa/internal/config"
	"ekthaa/internal/domain"
	"ekthaa/internal/export"
	"ekthaa/internal/invoice"
	"ekthaa/internal/pdf"
	"ekthaa/internal/port"
)

// TotalsResult is the live computation shown beside the invoice form.
type TotalsResult struct {
	Totals   invoice.Totals        `json:"totals"`
	Display  invoice.DisplayTotals `json:"display"`
	Warnings []invoice.HSNWarning  `json:"warnings"`
}

// GeneratedPDF is a rendered invoice. ArchiveKey and ArchiveURL are set only
// when archiving is enabled.
type GeneratedPDF struct {
	Filename   string
	Content    []byte
	Warnings   []invoice.HSNWarning
	ArchiveKey string
	ArchiveURL string
}

// ExportFile is a spreadsheet export of a draft.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// InvoiceService computes, validates, renders and exports invoice drafts.
type InvoiceService interface {
	Totals(d *invoice.Draft) *TotalsResult
	Validate(d *invoice.Draft) error
	GeneratePDF(ctx context.Context, d *invoice.Draft) (*GeneratedPDF, error)
	Export(ctx context.Context, d *invoice.Draft, format string) (*ExportFile, error)
}

type invoiceService struct {
	renderer pdf.Renderer
	hsn      *invoice.HSNLookup
	storage  port.ObjectStorage
	s3Cfg    *config.S3Config
	archive  *config.ArchiveConfig
	now      func() time.Time
}

// NewInvoiceService creates a new InvoiceService implementation. hsn and
// storage may be nil: without a lookup no HSN warnings are produced, without
// storage nothing is archived.
func NewInvoiceService(
	renderer pdf.Renderer,
	hsn *invoice.HSNLookup,
	storage port.ObjectStorage,
	s3Cfg *config.S3Config,
	archiveCfg *config.ArchiveConfig,
) InvoiceService {
	return &invoiceService{
		renderer: renderer,
		hsn:      hsn,
		storage:  storage,
		s3Cfg:    s3Cfg,
		archive:  archiveCfg,
		now:      time.Now,
	}
}

func (s *invoiceService) Totals(d *invoice.Draft) *TotalsResult {
	t := d.Totals()
	warnings := invoice.CheckHSN(s.hsn, d.LineItems(), d.TaxRates())
	if warnings == nil {
		warnings = []invoice.HSNWarning{}
	}
	return &TotalsResult{Totals: t, Display: t.Display(), Warnings: warnings}
}

func (s *invoiceService) Validate(d *invoice.Draft) error {
	return invoice.ValidateDraft(d)
}

func (s *invoiceService) GeneratePDF(ctx context.Context, d *invoice.Draft) (*GeneratedPDF, error) {
	if err := invoice.ValidateDraft(d); err != nil {
		return nil, err
	}

	totals := d.Totals()
	content, err := s.renderer.Render(d, totals)
	if err != nil {
		log.Printf("invoiceService.GeneratePDF: render failed for buyer %q: %v", d.Buyer.Name, err)
		return nil, err
	}

	now := s.now()
	out := &GeneratedPDF{
		Filename: invoice.PDFFilename(d.Buyer.Name, now),
		Content:  content,
		Warnings: invoice.CheckHSN(s.hsn, d.LineItems(), d.TaxRates()),
	}
	log.Printf("invoiceService.GeneratePDF: rendered %s (%d bytes, grand total %s)",
		out.Filename, len(content), invoice.FormatMoney(totals.GrandTotal))

	if !s.archiveEnabled() {
		return out, nil
	}
	key := path.Join(s.archive.Prefix, now.UTC().Format("2006/01/02"), uuid.New().String()+".pdf")
	if _, err := s.storage.Upload(ctx, port.ArchiveObject{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(content),
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Filename:    out.Filename,
		Metadata: map[string]string{
			"buyer":       d.Buyer.Name,
			"grand-total": invoice.FormatMoney(totals.GrandTotal),
		},
	}); err != nil {
		log.Printf("invoiceService.GeneratePDF: archive upload of %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}
	out.ArchiveKey = key

	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, s.s3Cfg.PresignExpiry)
	if err != nil {
		log.Printf("invoiceService.GeneratePDF: presigning %s failed: %v", key, err)
	} else {
		out.ArchiveURL = url
	}
	return out, nil
}

func (s *invoiceService) archiveEnabled() bool {
	return s.storage != nil && s.archive != nil && s.archive.Enabled && s.s3Cfg != nil
}

func (s *invoiceService) Export(ctx context.Context, d *invoice.Draft, format string) (*ExportFile, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, d, f); err != nil {
		return nil, fmt.Errorf("exporting draft as %s: %w", f, err)
	}
	return &ExportFile{
		Filename:    export.BuildFilename(d.Buyer.Name, f, s.now()),
		ContentType: f.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

// LoadHSNLookup reads the HSN master into memory. It is called once at startup.
func LoadHSNLookup(ctx context.Context, repo port.HSNRepository) (*invoice.HSNLookup, error) {
	entries, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading hsn master: %w", err)
	}
	lookup := invoice.NewHSNLookup(entries)
	log.Printf("service.LoadHSNLookup: loaded %d HSN codes", lookup.Len())
	return lookup, nil
}

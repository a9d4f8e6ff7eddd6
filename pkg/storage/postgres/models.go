package postgres

import (
	"database/sql"
	"time"

	"leadhunter/pkg/domain"

	"github.com/google/uuid"
)

type PgScan struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID `db:"user_id"`
	CompanyID uuid.UUID `db:"company_id"`

	Domain    string        `db:"domain"`
	Status    string        `db:"status"`
	LeadCount sql.NullInt64 `db:"lead_count" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// TODO: use https://github.com/jmattheis/goverter for converting

func (p *PgScan) ToDomain() *domain.Scan {
	return &domain.Scan{
		ID:        domain.ScanID(p.ID),
		UserID:    domain.UserID(p.UserID),
		CompanyID: domain.CompanyID(p.CompanyID),
		Domain:    p.Domain,
		Status:    domain.ScanStatus(p.Status),
		LeadCount: int(p.LeadCount.Int64),
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgScan) FromDomain(scan domain.Scan) {
	*p = PgScan{
		ID:        uuid.UUID(scan.ID),
		UserID:    uuid.UUID(scan.UserID),
		CompanyID: uuid.UUID(scan.CompanyID),
		Domain:    scan.Domain,
		Status:    string(scan.Status),
		LeadCount: sql.NullInt64{
			Int64: int64(scan.LeadCount),
			Valid: scan.LeadCount > 0,
		},
		Attempts: scan.Attempts,
		LastError: sql.NullString{
			String: scan.LastError,
			Valid:  scan.LastError != "",
		},
		CreatedAt: scan.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  scan.UpdatedAt,
			Valid: !scan.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  scan.DeletedAt,
			Valid: !scan.DeletedAt.IsZero(),
		},
	}
}

func domainScansToPg(scans []domain.Scan) []PgScan {
	out := make([]PgScan, len(scans))
	for i := range out {
		out[i].FromDomain(scans[i])
	}

	return out
}

func pgScansToDomain(scans []PgScan) []domain.Scan {
	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		out = append(out, *scan.ToDomain())
	}

	return out
}

type PgCompany struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Domain string         `db:"domain"`
	Name   sql.NullString `db:"name"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCompany) ToDomain() *domain.Company {
	return &domain.Company{
		ID:        domain.CompanyID(p.ID),
		Domain:    p.Domain,
		Name:      p.Name.String,
		CreatedAt: p.CreatedAt,
	}
}

type PgLead struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	CompanyID uuid.UUID `db:"company_id"`

	Email      string         `db:"email"`
	FirstName  sql.NullString `db:"first_name"`
	LastName   sql.NullString `db:"last_name"`
	RoleTitle  sql.NullString `db:"role_title"`
	ProfileURL sql.NullString `db:"profile_url"`

	ConfidenceScore int    `db:"confidence_score"`
	Status          string `db:"status"`
	Provenance      string `db:"provenance"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() *domain.Lead {
	return &domain.Lead{
		ID:              domain.LeadID(p.ID),
		CompanyID:       domain.CompanyID(p.CompanyID),
		Email:           p.Email,
		FirstName:       p.FirstName.String,
		LastName:        p.LastName.String,
		RoleTitle:       p.RoleTitle.String,
		ProfileURL:      p.ProfileURL.String,
		ConfidenceScore: p.ConfidenceScore,
		Status:          domain.Classification(p.Status),
		Provenance:      domain.Provenance(p.Provenance),
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgLead) FromDomain(lead domain.Lead) {
	*p = PgLead{
		ID:         uuid.UUID(lead.ID),
		CompanyID:  uuid.UUID(lead.CompanyID),
		Email:      lead.Email,
		FirstName:  sql.NullString{String: lead.FirstName, Valid: lead.FirstName != ""},
		LastName:   sql.NullString{String: lead.LastName, Valid: lead.LastName != ""},
		RoleTitle:  sql.NullString{String: lead.RoleTitle, Valid: lead.RoleTitle != ""},
		ProfileURL: sql.NullString{String: lead.ProfileURL, Valid: lead.ProfileURL != ""},

		ConfidenceScore: lead.ConfidenceScore,
		Status:          string(lead.Status),
		Provenance:      string(lead.Provenance),

		CreatedAt: lead.CreatedAt,
	}
}

func domainLeadsToPg(leads []domain.Lead) []PgLead {
	out := make([]PgLead, len(leads))
	for i := range out {
		out[i].FromDomain(leads[i])
	}

	return out
}

func pgLeadsToDomain(leads []PgLead) []domain.Lead {
	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, *lead.ToDomain())
	}

	return out
}

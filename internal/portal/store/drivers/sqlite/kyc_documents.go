package sqlite

import (
	"context"
	"database/sql"

	"github.com/educonnect/portal/internal/portal/domain"
)

type kycDocumentsRepo struct {
	db dbtx
}

func (r *kycDocumentsRepo) CreateDocument(ctx context.Context, d domain.KycDocument) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kyc_documents (id, user_id, institution_name, institution_role,
			student_staff_id, selfie_url, id_document_url, proof_of_residence_url,
			verification_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.UserID, mapStringNull(d.InstitutionName),
		mapStringNull(d.InstitutionRole), mapStringNull(d.StudentStaffID),
		mapStringNull(d.SelfieURL), mapStringNull(d.IDDocumentURL),
		mapStringNull(d.ProofOfResidenceURL), d.VerificationStatus, d.CreatedAt)
	return err
}

func (r *kycDocumentsRepo) ListDocumentsByUser(ctx context.Context, userID string) ([]domain.KycDocument, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, institution_name, institution_role, student_staff_id,
			selfie_url, id_document_url, proof_of_residence_url,
			verification_status, created_at
		FROM kyc_documents WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.KycDocument
	for rows.Next() {
		var (
			d           domain.KycDocument
			institution sql.NullString
			role        sql.NullString
			staffID     sql.NullString
			selfie      sql.NullString
			idDoc       sql.NullString
			proof       sql.NullString
		)
		err := rows.Scan(&d.ID, &d.UserID, &institution, &role, &staffID,
			&selfie, &idDoc, &proof, &d.VerificationStatus, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		d.InstitutionName = mapNullString(institution)
		d.InstitutionRole = mapNullString(role)
		d.StudentStaffID = mapNullString(staffID)
		d.SelfieURL = mapNullString(selfie)
		d.IDDocumentURL = mapNullString(idDoc)
		d.ProofOfResidenceURL = mapNullString(proof)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

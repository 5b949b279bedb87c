package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestKycSubmission(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0822220001")

	resp, err := session.SubmitKyc(ctx, portalsdk.KycSubmitRequest{
		Name:            "Thandi",
		Surname:         "Mokoena",
		IDNumber:        "9001015009087",
		DateOfBirth:     "1990-01-01",
		InstitutionName: "Rhodes University",
		InstitutionRole: "student",
		StudentStaffID:  "g19m1234",
		SelfieURL:       "https://cdn.example/selfie.jpg",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, "completed", resp.User.KycStatus)
	require.Equal(t, "Thandi", resp.User.Name)
	require.Equal(t, "Mokoena", resp.User.Surname)

	// Status survives a fresh read.
	me, err := session.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "completed", me.User.KycStatus)
}

func TestKycSubmissionRequiresIdentityFields(t *testing.T) {
	client, _ := setupPortal(t)

	session := performLogin(t, client, "0822220002")

	_, err := session.SubmitKyc(context.Background(), portalsdk.KycSubmitRequest{
		Name: "Thandi",
		// Surname, IDNumber, DateOfBirth missing
	})
	assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
}

func TestKycSubmissionRequiresLogin(t *testing.T) {
	client, _ := setupPortal(t)

	_, err := client.NewSessionFromToken("bogus").SubmitKyc(context.Background(), portalsdk.KycSubmitRequest{})
	assertAPIError(t, err, http.StatusUnauthorized, portalsdk.ErrorCodeUnauthenticated)
}

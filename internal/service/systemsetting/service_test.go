package systemsetting

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/systemsetting"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingRepo struct {
	active   *systemsetting.SystemSetting
	err      error
	upserted []*string
}

func (f *fakeSettingRepo) GetActive(context.Context) (systemsetting.SystemSetting, error) {
	if f.err != nil {
		return systemsetting.SystemSetting{}, f.err
	}
	if f.active == nil {
		return systemsetting.SystemSetting{}, systemsetting.ErrSystemSettingNotFound
	}
	return *f.active, nil
}

func (f *fakeSettingRepo) UpsertActiveLogo(_ context.Context, logoURL *string) (systemsetting.SystemSetting, error) {
	f.upserted = append(f.upserted, logoURL)
	f.active = &systemsetting.SystemSetting{ID: 1, LogoURL: logoURL, Active: true}
	return *f.active, nil
}

type fakeFileService struct{}

func (fakeFileService) UploadLogo(context.Context, io.Reader) (string, error) {
	return "http://files.test/logos/x.png", nil
}

func strPtr(s string) *string { return &s }

func TestLogoURL_PrefersActiveSetting(t *testing.T) {
	repo := &fakeSettingRepo{active: &systemsetting.SystemSetting{ID: 1, LogoURL: strPtr("https://cdn.test/active.png")}}
	svc := NewSystemSettingService(repo, fakeFileService{}, "https://cdn.test/default.png")

	url, err := svc.LogoURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/active.png", url)
}

func TestLogoURL_FallsBackToConfig(t *testing.T) {
	svc := NewSystemSettingService(&fakeSettingRepo{}, fakeFileService{}, "https://cdn.test/default.png")

	url, err := svc.LogoURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/default.png", url)

	withEmpty := &fakeSettingRepo{active: &systemsetting.SystemSetting{ID: 1}}
	url, err = NewSystemSettingService(withEmpty, fakeFileService{}, "https://cdn.test/default.png").LogoURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/default.png", url)
}

func TestLogoURL_Errors(t *testing.T) {
	_, err := NewSystemSettingService(&fakeSettingRepo{}, fakeFileService{}, "").LogoURL(context.Background())
	assert.ErrorIs(t, err, systemsetting.ErrLogoNotConfigured)

	dbErr := errors.New("db down")
	_, err = NewSystemSettingService(&fakeSettingRepo{err: dbErr}, fakeFileService{}, "x").LogoURL(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestUpdateActive(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSystemSettingService(repo, fakeFileService{}, "")

	_, err := svc.UpdateActive(context.Background(), systemsetting.UpdateSystemSettingRequest{LogoURL: strPtr("ftp://nope")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	resp, err := svc.UpdateActive(context.Background(), systemsetting.UpdateSystemSettingRequest{LogoURL: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, resp.LogoURL)
	assert.Nil(t, repo.upserted[0])
}

func TestUploadLogo_StoresPublicURL(t *testing.T) {
	repo := &fakeSettingRepo{}
	svc := NewSystemSettingService(repo, fakeFileService{}, "")

	resp, err := svc.UploadLogo(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, resp.LogoURL)
	assert.Equal(t, "http://files.test/logos/x.png", *resp.LogoURL)
}

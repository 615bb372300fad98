package service

import (
	"context"
	"strings"
	"testing"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadResume(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	storage := &fakeStorage{}
	resumes := NewResumeService(storage, env.content)
	require.True(t, resumes.Enabled())

	hero, err := resumes.UploadResume(ctx, models.UploadFromBytes("cv.pdf", "application/pdf", []byte("%PDF-1.7")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hero.ResumeURL, "https://files.example.dev/resumes/resume-"))
	assert.True(t, strings.HasSuffix(hero.ResumeURL, ".pdf"))
	assert.Len(t, storage.objects, 1)
}

func TestUploadResumeErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := NewResumeService(nil, env.content).UploadResume(ctx, models.UploadFromBytes("cv.pdf", "application/pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrResumeStorageOff)

	_, err = NewResumeService(&fakeStorage{err: assert.AnError}, env.content).UploadResume(ctx, models.UploadFromBytes("cv.pdf", "application/pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, assert.AnError)

	hero, err := env.content.GetHero(ctx)
	assert.Nil(t, hero)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

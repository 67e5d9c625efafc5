package content

import (
	"testing"

	"divineastro/database/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetZodiacSigns(t *testing.T) {
	svc := &DefaultContentService{}

	signs := svc.GetZodiacSigns()
	require.Len(t, signs, 12)
	assert.Equal(t, "aries", signs[0].Slug)
	assert.Equal(t, "pisces", signs[11].Slug)
}

func TestGetZodiacSignBySlug(t *testing.T) {
	svc := &DefaultContentService{}

	sign, err := svc.GetZodiacSign("leo")
	require.NoError(t, err)
	assert.Equal(t, "Leo", sign.Name)
	assert.Equal(t, "Ruby", sign.LuckyStone)

	_, err = svc.GetZodiacSign("ophiuchus")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

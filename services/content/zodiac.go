package content

import (
	"divineastro/database/repository"
	"divineastro/models"
)

// zodiacSigns is the static reference set behind the horoscope pages.
var zodiacSigns = []models.ZodiacSign{
	{Name: "Aries", Slug: "aries", Symbol: "♈", Element: "Fire", Dates: "Mar 21 - Apr 19",
		Traits:        []string{"Courageous", "Determined", "Confident", "Enthusiastic"},
		Compatibility: []string{"Leo", "Sagittarius", "Gemini"}, LuckyStone: "Red Coral"},
	{Name: "Taurus", Slug: "taurus", Symbol: "♉", Element: "Earth", Dates: "Apr 20 - May 20",
		Traits:        []string{"Reliable", "Patient", "Practical", "Devoted"},
		Compatibility: []string{"Virgo", "Capricorn", "Cancer"}, LuckyStone: "Diamond"},
	{Name: "Gemini", Slug: "gemini", Symbol: "♊", Element: "Air", Dates: "May 21 - Jun 20",
		Traits:        []string{"Gentle", "Affectionate", "Curious", "Adaptable"},
		Compatibility: []string{"Libra", "Aquarius", "Aries"}, LuckyStone: "Emerald"},
	{Name: "Cancer", Slug: "cancer", Symbol: "♋", Element: "Water", Dates: "Jun 21 - Jul 22",
		Traits:        []string{"Tenacious", "Imaginative", "Loyal", "Sympathetic"},
		Compatibility: []string{"Scorpio", "Pisces", "Taurus"}, LuckyStone: "Pearl"},
	{Name: "Leo", Slug: "leo", Symbol: "♌", Element: "Fire", Dates: "Jul 23 - Aug 22",
		Traits:        []string{"Creative", "Passionate", "Generous", "Warm-hearted"},
		Compatibility: []string{"Aries", "Sagittarius", "Libra"}, LuckyStone: "Ruby"},
	{Name: "Virgo", Slug: "virgo", Symbol: "♍", Element: "Earth", Dates: "Aug 23 - Sep 22",
		Traits:        []string{"Loyal", "Analytical", "Kind", "Hardworking"},
		Compatibility: []string{"Taurus", "Capricorn", "Scorpio"}, LuckyStone: "Emerald"},
	{Name: "Libra", Slug: "libra", Symbol: "♎", Element: "Air", Dates: "Sep 23 - Oct 22",
		Traits:        []string{"Cooperative", "Diplomatic", "Gracious", "Fair-minded"},
		Compatibility: []string{"Gemini", "Aquarius", "Leo"}, LuckyStone: "Diamond"},
	{Name: "Scorpio", Slug: "scorpio", Symbol: "♏", Element: "Water", Dates: "Oct 23 - Nov 21",
		Traits:        []string{"Resourceful", "Brave", "Passionate", "Stubborn"},
		Compatibility: []string{"Cancer", "Pisces", "Virgo"}, LuckyStone: "Red Coral"},
	{Name: "Sagittarius", Slug: "sagittarius", Symbol: "♐", Element: "Fire", Dates: "Nov 22 - Dec 21",
		Traits:        []string{"Generous", "Idealistic", "Humorous", "Adventurous"},
		Compatibility: []string{"Aries", "Leo", "Aquarius"}, LuckyStone: "Yellow Sapphire"},
	{Name: "Capricorn", Slug: "capricorn", Symbol: "♑", Element: "Earth", Dates: "Dec 22 - Jan 19",
		Traits:        []string{"Responsible", "Disciplined", "Self-controlled", "Ambitious"},
		Compatibility: []string{"Taurus", "Virgo", "Pisces"}, LuckyStone: "Blue Sapphire"},
	{Name: "Aquarius", Slug: "aquarius", Symbol: "♒", Element: "Air", Dates: "Jan 20 - Feb 18",
		Traits:        []string{"Progressive", "Original", "Independent", "Humanitarian"},
		Compatibility: []string{"Gemini", "Libra", "Sagittarius"}, LuckyStone: "Blue Sapphire"},
	{Name: "Pisces", Slug: "pisces", Symbol: "♓", Element: "Water", Dates: "Feb 19 - Mar 20",
		Traits:        []string{"Compassionate", "Artistic", "Intuitive", "Gentle"},
		Compatibility: []string{"Cancer", "Scorpio", "Capricorn"}, LuckyStone: "Yellow Sapphire"},
}

func (s *DefaultContentService) GetZodiacSigns() []models.ZodiacSign {
	return zodiacSigns
}

func (s *DefaultContentService) GetZodiacSign(slug string) (*models.ZodiacSign, error) {
	for i := range zodiacSigns {
		if zodiacSigns[i].Slug == slug {
			return &zodiacSigns[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

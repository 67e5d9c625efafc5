package repository

import (
	"time"

	"divineastro/models"

	"github.com/google/uuid"
)

// Fixture data backing the memory fallback so catalog and content pages stay
// alive when the store is unreachable. Ids are regenerated per process start.

func seedProducts() []models.Product {
	products := []models.Product{
		{
			Name:        "Blue Sapphire (Neelam) - 5 Carat",
			Category:    "Gemstones",
			Price:       "25000",
			Description: "Natural certified Blue Sapphire gemstone known for bringing prosperity, mental clarity, and protection. This premium 5-carat stone is ideal for Saturn remedies.",
			Images: []string{
				"https://images.unsplash.com/photo-1611955167811-4711904bb9f8?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Enhances mental clarity and focus",
				"Brings financial prosperity and success",
				"Protects against negative energies",
				"Strengthens intuition and wisdom",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.8",
			ReviewCount: 127,
		},
		{
			Name:        "Ruby (Manik) - Premium 3 Carat",
			Category:    "Gemstones",
			Price:       "35000",
			Description: "Exquisite natural Ruby gemstone representing the Sun. Known for boosting confidence, leadership qualities, and vitality.",
			Images: []string{
				"https://images.unsplash.com/photo-1601821765780-754fa98637c1?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1611630259861-ead5f74c7e70?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Enhances leadership and authority",
				"Improves health and vitality",
				"Strengthens father-son relationships",
				"Brings name, fame, and recognition",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.9",
			ReviewCount: 98,
		},
		{
			Name:        "Crystal Healing Bracelet - 7 Chakra",
			Category:    "Bracelets",
			Price:       "1500",
			Description: "Handcrafted 7 Chakra healing bracelet made with genuine crystals. Balances all seven chakras and promotes overall well-being.",
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Balances all seven chakras",
				"Promotes emotional healing",
				"Enhances positive energy flow",
				"Reduces stress and anxiety",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.7",
			ReviewCount: 215,
		},
		{
			Name:        "Rudraksha Mala - 108 Beads (5 Mukhi)",
			Category:    "Rudraksha",
			Price:       "3500",
			Description: "Authentic 5 Mukhi Rudraksha Mala with 108 beads. Blessed and energized by expert priests. Perfect for meditation and spiritual practices.",
			Images: []string{
				"https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1607827448387-a67db1383b59?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Enhances meditation and focus",
				"Brings peace and mental clarity",
				"Protects from negative energies",
				"Improves overall health",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.9",
			ReviewCount: 156,
		},
		{
			Name:        "Sri Yantra - Brass (6 inches)",
			Category:    "Yantras",
			Price:       "2500",
			Description: "Sacred Sri Yantra made in pure brass. Energized with Vedic mantras. Brings prosperity, success, and harmony to your home or office.",
			Images: []string{
				"https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1588392382834-a891154bca4d?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Attracts wealth and abundance",
				"Removes obstacles and negativity",
				"Enhances meditation and spiritual growth",
				"Brings harmony and peace",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.8",
			ReviewCount: 89,
		},
		{
			Name:        "Emerald (Panna) Ring - Gold Setting",
			Category:    "Rings",
			Price:       "45000",
			Description: "Premium Emerald gemstone set in 18K gold ring. Enhances communication, intellect, and business success. Ideal for Mercury remedies.",
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=600&h=600&fit=crop",
				"https://images.unsplash.com/photo-1603561596112-0a132b757442?w=600&h=600&fit=crop",
			},
			Benefits: []string{
				"Enhances communication skills",
				"Improves business and trade",
				"Strengthens intellect and memory",
				"Brings success in education",
			},
			Certified:   true,
			InStock:     true,
			Rating:      "4.9",
			ReviewCount: 67,
		},
	}
	for i := range products {
		products[i].ID = uuid.NewString()
	}
	return products
}

func seedBlogPosts() []models.BlogPost {
	posts := []models.BlogPost{
		{
			Title:           "Understanding the Power of Gemstones in Vedic Astrology",
			Slug:            "power-of-gemstones-vedic-astrology",
			Excerpt:         "Discover how gemstones can transform your life according to ancient Vedic wisdom and planetary influences.",
			Content:         "<p>Gemstones have been revered in Vedic astrology for thousands of years as powerful tools for balancing planetary energies and enhancing positive influences in one's life.</p><p>Each gemstone corresponds to a specific planet and wearing the right stone can help mitigate negative planetary effects while amplifying beneficial ones. The selection process requires careful analysis of your birth chart by an experienced astrologer.</p><p>It's essential to ensure that gemstones are natural, certified, and properly energized before wearing them. The quality, weight, and method of wearing all play crucial roles in their effectiveness.</p>",
			Category:        "Astrology",
			FeaturedImage:   "https://images.unsplash.com/photo-1611955167811-4711904bb9f8?w=800&h=600&fit=crop",
			Author:          "Pandit Rajesh Sharma",
			ReadTime:        8,
			MetaDescription: "Learn about the transformative power of gemstones in Vedic astrology and how they can balance planetary energies in your life.",
			PublishedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:           "The Spiritual Significance of Rudraksha Beads",
			Slug:            "spiritual-significance-rudraksha-beads",
			Excerpt:         "Explore the divine origins and healing properties of Rudraksha beads, sacred to Lord Shiva.",
			Content:         "<p>Rudraksha beads are considered sacred in Hindu tradition and are believed to be the tears of Lord Shiva. These powerful beads offer numerous spiritual and health benefits to those who wear them with devotion.</p><p>Different Mukhi (faces) of Rudraksha beads correspond to different deities and offer unique benefits. The 5 Mukhi Rudraksha is the most common and beneficial for general well-being.</p><p>Regular wearing of Rudraksha beads can help in meditation, reduce stress, and protect against negative energies. It's important to obtain genuine beads and maintain them with proper care.</p>",
			Category:        "Spirituality",
			FeaturedImage:   "https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=800&h=600&fit=crop",
			Author:          "Pandit Rajesh Sharma",
			ReadTime:        6,
			MetaDescription: "Discover the spiritual significance and healing properties of Rudraksha beads in Hindu tradition.",
			PublishedAt:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:           "How to Choose Your Lucky Gemstone",
			Slug:            "choose-lucky-gemstone",
			Excerpt:         "A comprehensive guide to selecting the perfect gemstone based on your zodiac sign and birth chart.",
			Content:         "<p>Choosing the right gemstone is a crucial decision that should be based on careful astrological analysis rather than personal preference alone.</p><p>Your birth chart reveals which planets are strong, weak, or malefic in your horoscope. A qualified astrologer can recommend gemstones that will strengthen beneficial planets and balance challenging ones.</p><p>Factors to consider include the quality of the gemstone, its weight (typically measured in carats), the metal setting, and the finger on which it should be worn. Timing of wearing is also important for maximum benefit.</p>",
			Category:        "Gemstones",
			FeaturedImage:   "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&h=600&fit=crop",
			Author:          "Pandit Rajesh Sharma",
			ReadTime:        10,
			MetaDescription: "Learn how to choose the perfect gemstone for your zodiac sign and birth chart with this comprehensive guide.",
			PublishedAt:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range posts {
		posts[i].ID = uuid.NewString()
	}
	return posts
}

func seedTestimonials() []models.Testimonial {
	testimonials := []models.Testimonial{
		{
			Name:     "Priya Sharma",
			Location: "Mumbai, India",
			Rating:   5,
			Review:   "The Blue Sapphire I purchased has brought remarkable positive changes in my life. My career has flourished and I feel more confident. The authenticity certificate gave me complete peace of mind.",
			Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200&h=200&fit=crop",
			Verified: true,
		},
		{
			Name:     "Rajesh Kumar",
			Location: "Delhi, India",
			Rating:   5,
			Review:   "Excellent consultation service! Pandit Ji's guidance was precise and the remedies suggested have been very effective. The Rudraksha Mala quality is outstanding.",
			Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200&h=200&fit=crop",
			Verified: true,
		},
		{
			Name:     "Anita Desai",
			Location: "Bangalore, India",
			Rating:   5,
			Review:   "I was skeptical at first, but the 7 Chakra bracelet has genuinely helped with my stress and anxiety. The quality is premium and it looks beautiful too!",
			Avatar:   "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200&h=200&fit=crop",
			Verified: true,
		},
		{
			Name:     "Vikram Singh",
			Location: "Jaipur, India",
			Rating:   5,
			Review:   "Outstanding experience from consultation to delivery. The gemstone recommended has brought stability in my business. Highly recommend Divine Astrology!",
			Avatar:   "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=200&h=200&fit=crop",
			Verified: true,
		},
	}
	for i := range testimonials {
		testimonials[i].ID = uuid.NewString()
	}
	return testimonials
}

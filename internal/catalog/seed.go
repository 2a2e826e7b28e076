package catalog

import "happyafrica/internal/model"

// BrandAccountID is the sponsor account that owns the seed ad.
const BrandAccountID = "brand_coke"

// CurrentUser is the signed-in mock account that authors uploads.
func CurrentUser() model.User {
	return model.User{
		ID:          "u1",
		Username:    "happy_user",
		DisplayName: "Happy Creator",
		AvatarURL:   "https://picsum.photos/100/100",
		Followers:   1205,
		Following:   45,
		Likes:       8500,
		Coins:       1500,
		Bio:         "Sharing the joy of Africa! 🌍✨",
	}
}

func seedUsers() map[string]model.User {
	users := []model.User{
		{ID: "u2", Username: "travel_king", DisplayName: "Travel King", AvatarURL: "https://picsum.photos/100/100?random=2", Followers: 5000, Following: 100, Likes: 20000},
		{ID: "u3", Username: "artistic_soul", DisplayName: "Artistic Soul", AvatarURL: "https://picsum.photos/100/100?random=4", Followers: 8900, Following: 20, Likes: 45000},
		{ID: "u4", Username: "tech_guru", DisplayName: "Tech Guru", AvatarURL: "https://picsum.photos/100/100?random=6", Followers: 1200, Following: 300, Likes: 5000},
		{ID: "u5", Username: "chef_mama", DisplayName: "Mama Africa Kitchen", AvatarURL: "https://picsum.photos/100/100?random=8", Followers: 15000, Following: 10, Likes: 90000},
		{ID: "u6", Username: "dance_crew_ke", DisplayName: "Nairobi Dancers", AvatarURL: "https://picsum.photos/100/100?random=9", Followers: 32000, Following: 50, Likes: 120000},
		{ID: BrandAccountID, Username: "cocacola_africa", DisplayName: "Coca-Cola Africa", AvatarURL: "https://ui-avatars.com/api/?name=Coke&background=red&color=fff", Followers: 100000, Likes: 5000},
	}
	out := make(map[string]model.User, len(users))
	for _, u := range users {
		out[u.ID] = u
	}
	return out
}

// SeedVideos returns the catalog every session starts from.
func SeedVideos() []model.Video {
	u := seedUsers()
	return []model.Video{
		{
			ID:          "v1",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Poster:      "https://picsum.photos/400/800?random=1",
			Description: "Cruising through the city! #vibes #travel",
			Hashtags:    []string{"#vibes", "#travel", "#africa"},
			Likes:       1200, Comments: 45, Shares: 12,
			User:       u["u2"],
			MusicTrack: "Original Sound - Travel King",
			Category:   model.CategoryTravel,
		},
		{
			ID:          "v2",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Poster:      "https://picsum.photos/400/800?random=3",
			Description: "Animation magic ✨ #art #creative",
			Hashtags:    []string{"#art", "#creative", "#animation"},
			Likes:       3400, Comments: 120, Shares: 300,
			User:       u["u3"],
			MusicTrack: "Dreamy Beats - LoFi",
			Category:   model.CategoryTech,
		},
		{
			ID:          "v3",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
			Poster:      "https://picsum.photos/400/800?random=5",
			Description: "Tech is the future 🚀 #scifi #tech",
			Hashtags:    []string{"#scifi", "#tech", "#future"},
			Likes:       890, Comments: 22, Shares: 5,
			User:       u["u4"],
			MusicTrack: "Cyberpunk Theme",
			Category:   model.CategoryTech,
		},
		{
			ID:          "v4",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Poster:      "https://picsum.photos/400/800?random=7",
			Description: "Cooking Jollof Rice today! 🍛 #food #africa",
			Hashtags:    []string{"#food", "#jollof", "#cooking"},
			Likes:       5600, Comments: 300, Shares: 150,
			User:       u["u5"],
			MusicTrack: "Afrobeats Cooking Mix",
			Category:   model.CategoryFood,
		},
		{
			ID:          "v5",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			Poster:      "https://picsum.photos/400/800?random=11",
			Description: "New dance challenge! Can you do it? 💃 #dance",
			Hashtags:    []string{"#dance", "#challenge", "#trending"},
			Likes:       15000, Comments: 800, Shares: 2000,
			User:       u["u6"],
			MusicTrack: "Amapiano Hit 2025",
			Category:   model.CategoryDance,
		},
		{
			ID:          "ad1",
			URL:         "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Poster:      "https://picsum.photos/400/800?random=99",
			Description: "Taste the feeling. Refresh yourself today. #ad",
			Hashtags:    []string{"#refresh", "#ad", "#sponsored"},
			Likes:       500,
			User:        u[BrandAccountID],
			MusicTrack:  "Commercial Sound",
			Category:    model.CategoryAd,
			IsAd:        true,
			AdLink:      "https://www.coca-cola.com",
		},
	}
}

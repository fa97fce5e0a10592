package catalog

import (
	"github.com/reggiebaraza/photospot/internal/suntime"
	"github.com/reggiebaraza/photospot/internal/weather"
)

// Curated returns the hand-picked Berlin dataset. It is the fallback when
// external geodata is unavailable and the seed the external data extends.
// Returned slices are fresh copies; callers may mutate them.
func Curated() []Spot {
	spots := make([]Spot, len(curated))
	copy(spots, curated)
	return spots
}

var curated = []Spot{
	{
		ID:            1,
		Title:         "Brandenburg Gate in the Rain",
		Description:   "Capture the reflections of the gate in the puddles on Pariser Platz.",
		Place:         "Pariser Platz, Berlin",
		Lat:           coord(52.5162),
		Lng:           coord(13.3777),
		Moods:         []string{"Melancholic", "Majestic"},
		Weather:       []weather.Category{weather.CategoryRainy, weather.CategoryCloudy},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodEvening, suntime.PeriodBlueHour},
		Light:         suntime.DirectionWest,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "berlin brandenburg gate rain",
	},
	{
		ID:            2,
		Title:         "Autumn Leaves in Tiergarten",
		Description:   "Use a shallow depth of field to capture the vibrant orange and red leaves.",
		Place:         "Tiergarten, Berlin",
		Lat:           coord(52.5145),
		Lng:           coord(13.3501),
		Moods:         []string{"Warm", "Romantic", "Calm"},
		Weather:       []weather.Category{weather.CategorySunny},
		Seasons:       []weather.Season{weather.SeasonAutumn},
		Times:         []suntime.Period{suntime.PeriodAfternoon, suntime.PeriodGoldenHour},
		Light:         suntime.DirectionSouth,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "tiergarten berlin autumn",
	},
	{
		ID:            3,
		Title:         "Cyberpunk Alexanderplatz",
		Description:   "Long exposure of the trams and neon signs at night.",
		Place:         "Alexanderplatz, Berlin",
		Lat:           coord(52.5219),
		Lng:           coord(13.4132),
		Moods:         []string{"Futuristic", "Urban"},
		Weather:       []weather.Category{weather.CategoryAny},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodNight},
		Light:         suntime.DirectionAny,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyModerate,
		ImageQuery:    "alexanderplatz berlin night neon",
	},
	{
		ID:            4,
		Title:         "Cherry Blossoms at TV Tower",
		Description:   "Frame the TV tower through the blooming cherry blossoms.",
		Place:         "Mauerpark, Berlin",
		Lat:           coord(52.5208),
		Lng:           coord(13.4094),
		Moods:         []string{"Romantic", "Fresh"},
		Weather:       []weather.Category{weather.CategorySunny},
		Seasons:       []weather.Season{weather.SeasonSpring},
		Times:         []suntime.Period{suntime.PeriodMorning, suntime.PeriodSunrise},
		Light:         suntime.DirectionEast,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "berlin tv tower cherry blossom",
	},
	{
		ID:            5,
		Title:         "Snowy Victory Column",
		Description:   "The golden statue against a stark white snowy background.",
		Place:         "Siegessäule, Berlin",
		Lat:           coord(52.5145),
		Lng:           coord(13.3501),
		Moods:         []string{"Majestic", "Minimalist"},
		Weather:       []weather.Category{weather.CategorySnowy},
		Seasons:       []weather.Season{weather.SeasonWinter},
		Times:         []suntime.Period{suntime.PeriodMorning},
		Light:         suntime.DirectionEast,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "siegessaeule berlin snow",
	},
	{
		ID:            6,
		Title:         "Oberbaum Bridge Sunset",
		Description:   "Capture the U-Bahn crossing the bridge with the sunset in the background.",
		Place:         "Oberbaumbrücke, Berlin",
		Lat:           coord(52.5019),
		Lng:           coord(13.4447),
		Moods:         []string{"Atmospheric", "Urban", "Warm"},
		Weather:       []weather.Category{weather.CategorySunny, weather.CategoryCloudy},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodGoldenHour, suntime.PeriodSunset},
		Light:         suntime.DirectionWest,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyModerate,
		ImageQuery:    "oberbaumbruecke berlin sunset",
	},
	{
		ID:            7,
		Title:         "East Side Gallery Details",
		Description:   "Focus on the textures and colors of the murals on the Berlin Wall.",
		Place:         "Mühlenstraße, Berlin",
		Lat:           coord(52.5050),
		Lng:           coord(13.4397),
		Moods:         []string{"Urban", "Edgy"},
		Weather:       []weather.Category{weather.CategoryCloudy, weather.CategoryRainy},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodAfternoon},
		Light:         suntime.DirectionSouth,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "east side gallery berlin mural",
	},
	{
		ID:            8,
		Title:         "Tempelhof Field Wide Angle",
		Description:   "The vast open space of the former airport is perfect for minimalist shots.",
		Place:         "Tempelhofer Feld, Berlin",
		Lat:           coord(52.4730),
		Lng:           coord(13.4000),
		Moods:         []string{"Minimalist", "Calm", "Vast"},
		Weather:       []weather.Category{weather.CategoryAny},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodAfternoon, suntime.PeriodGoldenHour, suntime.PeriodAny},
		Light:         suntime.DirectionAny,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "tempelhofer feld berlin",
	},
	{
		ID:            9,
		Title:         "Teufelsberg Radar Station",
		Description:   "Post-apocalyptic vibes with street art and panoramic views of the Grunewald.",
		Place:         "Teufelsberg, Berlin",
		Lat:           coord(52.5016),
		Lng:           coord(13.2415),
		Moods:         []string{"Edgy", "Mysterious", "Urban"},
		Weather:       []weather.Category{weather.CategoryAny},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodAny},
		Light:         suntime.DirectionAny,
		Accessibility: AccessRestricted,
		Difficulty:    DifficultyHard,
		ImageQuery:    "teufelsberg berlin radar",
	},
	{
		ID:            10,
		Title:         "Museum Island Blue Hour",
		Description:   "The Bode Museum mirrored in the Spree just after sunset.",
		Place:         "Museumsinsel, Berlin",
		Lat:           coord(52.5212),
		Lng:           coord(13.3950),
		Moods:         []string{"Classic", "Calm"},
		Weather:       []weather.Category{weather.CategoryAny},
		Seasons:       []weather.Season{weather.SeasonAll},
		Times:         []suntime.Period{suntime.PeriodBlueHour, suntime.PeriodEvening},
		Light:         suntime.DirectionAny,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "museum island berlin blue hour",
	},
	{
		ID:            11,
		Title:         "Foggy Morning at Landwehr Canal",
		Description:   "Mist over the water turns the tree-lined canal into a soft gradient.",
		Place:         "Landwehrkanal, Berlin",
		Lat:           coord(52.4937),
		Lng:           coord(13.4171),
		Moods:         []string{"Mysterious", "Melancholic", "Calm"},
		Weather:       []weather.Category{weather.CategoryFoggy, weather.CategoryCloudy},
		Seasons:       []weather.Season{weather.SeasonAutumn, weather.SeasonWinter},
		Times:         []suntime.Period{suntime.PeriodSunrise, suntime.PeriodMorning},
		Light:         suntime.DirectionEast,
		Accessibility: AccessPublic,
		Difficulty:    DifficultyEasy,
		ImageQuery:    "landwehrkanal berlin fog",
	},
	{
		ID:            12,
		Title:         "Summer Evening at Badeschiff",
		Description:   "Silhouettes against the glowing pool on the Spree.",
		Place:         "Alt-Treptow, Berlin",
		Lat:           coord(52.4969),
		Lng:           coord(13.4533),
		Moods:         []string{"Playful", "Warm"},
		Weather:       []weather.Category{weather.CategorySunny},
		Seasons:       []weather.Season{weather.SeasonSummer},
		Times:         []suntime.Period{suntime.PeriodSunset, suntime.PeriodGoldenHour},
		Light:         suntime.DirectionWest,
		Accessibility: AccessRestricted,
		Difficulty:    DifficultyModerate,
		ImageQuery:    "badeschiff berlin summer",
	},
}

package formatter

import "github.com/alexanderramin/folio/internal/locale"

// Text keys for the few strings the terminal front end shows.
const (
	TextProjects   = "projects"
	TextCategories = "categories"
	TextLoading    = "loading"
	TextEmpty      = "empty"
	TextError      = "error"
	TextTotal      = "total"
	TextYear       = "year"
	TextClient     = "client"
	TextRole       = "role"
	TextStatus     = "status"
	TextCategory   = "category"
	TextAnyStatus  = "any_status"
	TextImages     = "images"
	TextRecent     = "recent"
	TextNoRecent   = "no_recent"
	TextNoProject  = "no_project"
	TextLanguage   = "language"
	TextRetry      = "retry"
	TextViewed     = "viewed"
)

var copyTable = map[locale.Locale]map[string]string{
	locale.Russian: {
		TextProjects:   "Проекты",
		TextCategories: "Категории",
		TextLoading:    "Загрузка...",
		TextEmpty:      "Проекты не найдены.",
		TextError:      "Ошибка",
		TextTotal:      "Всего",
		TextYear:       "Год",
		TextClient:     "Клиент",
		TextRole:       "Роль",
		TextStatus:     "Статус",
		TextCategory:   "Категория",
		TextAnyStatus:  "Любой статус",
		TextImages:     "Изображения",
		TextRecent:     "Недавние",
		TextNoRecent:   "Вы ещё не открывали проекты.",
		TextNoProject:  "Проект не выбран.",
		TextLanguage:   "Язык",
		TextRetry:      "r: повторить",
		TextViewed:     "Просмотрен",
	},
	locale.English: {
		TextProjects:   "Projects",
		TextCategories: "Categories",
		TextLoading:    "Loading...",
		TextEmpty:      "No projects found.",
		TextError:      "Error",
		TextTotal:      "Total",
		TextYear:       "Year",
		TextClient:     "Client",
		TextRole:       "Role",
		TextStatus:     "Status",
		TextCategory:   "Category",
		TextAnyStatus:  "Any status",
		TextImages:     "Images",
		TextRecent:     "Recent",
		TextNoRecent:   "You have not opened any projects yet.",
		TextNoProject:  "No project selected.",
		TextLanguage:   "Language",
		TextRetry:      "r: retry",
		TextViewed:     "Viewed",
	},
}

// T returns the copy for key in l, falling back to the default locale and
// then to the key itself.
func T(l locale.Locale, key string) string {
	if s, ok := copyTable[l][key]; ok {
		return s
	}
	if s, ok := copyTable[locale.Default][key]; ok {
		return s
	}
	return key
}

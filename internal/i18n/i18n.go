package i18n

import "github.com/traveldesk/travelbot/internal/model"

// T returns the translation of key for the given language, falling back
// to English and finally to the key itself so a missing entry is visible
// in chat instead of silently blank.
func T(lang model.Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[model.DefaultLanguage][key]; ok {
		return s
	}
	return key
}

var tables = map[model.Language]map[string]string{
	model.LanguageEnglish: english,
	model.LanguageHebrew:  hebrew,
	model.LanguageRussian: russian,
	model.LanguageArabic:  arabic,
}

var english = map[string]string{
	"choose_language":   "Please choose your language",
	"welcome_message":   "Welcome! I can search flights, keep your travel checklist and recommend what to see. What shall we do?",
	"help_message":      "Commands:\n/searchflight - search flights\n/checklist - travel checklist\n/recommendations - destination tips\n/language - change language",
	"flight_tickets":    "✈️ Flight tickets",
	"checklist_journey": "📝 Travel checklist",
	"dest_recommend":    "🌍 Destination tips",
	"unknown_action":    "I didn't catch that. Use /help to see what I can do.",
	"unexpected_error":  "Something went wrong, please try again.",

	"flight_search_details":       "Send me: departure city, arrival city, departure date[, return date]\nExample: Tel Aviv, Paris, 01/12/2025, 05/12/2025",
	"provide_all_details_warning": "Please provide 3 or 4 comma-separated values: departure, arrival, departure date and an optional return date.",
	"correct_format_warning":      "I couldn't read the date. Use day-first format, e.g. 01/12/2025.",
	"arrival_date_warning":        "The return date must not be before the departure date.",
	"departure_date_warning":      "The departure date must not be in the past.",
	"airport_not_found_warning":   "I couldn't find an airport for",
	"searching_flights":           "Searching flights",
	"searching_return":            "Searching return flights",
	"one_way":                     "one-way",
	"available_flights":           "Available flights",
	"number_of_stops":             "(1), (2) - number of stops",
	"flights_not_found":           "No flights found for this route and dates.",
	"error_fetching_flights":      "Flight search is unavailable right now, please try again later.",
	"stale_selection":             "These results are no longer valid. Start a new search with /searchflight.",
	"searching_booking":           "Fetching booking details...",
	"booking_details":             "Booking details",
	"no_booking_link":             "The provider returned no booking link for this flight.",
	"error_fetching_booking":      "Couldn't fetch booking details, please try again later.",

	"airline":        "Airline",
	"total_duration": "Total duration",
	"price":          "Price",
	"layovers":       "Layovers",
	"flights":        "Flights",
	"from":           "From",
	"to":             "To",
	"departure":      "Departure",
	"arrival":        "Arrival",
	"duration":       "Duration",
	"travel_class":   "Class",
	"legroom":        "Legroom",
	"mins":           "mins",
	"overnight":      "overnight",
	"on":             "on",
	"until":          "until",

	"checklist_prompt":        "What would you like to do with your checklist?",
	"show_checklist":          "📋 Show my checklist",
	"start_checklist":         "🆕 Start a new checklist",
	"checklist":               "Your travel checklist:",
	"confirm_new_checklist":   "Started a fresh checklist for you.",
	"modify_checklist_prompt": "Would you like to change anything?",
	"add":                     "Add",
	"delete":                  "Delete",
	"update":                  "Update status",
	"keep_as_is":              "Keep as is",
	"send_item_add":           "Send me the item to add.",
	"send_item_delete":        "Send me the item to remove.",
	"item_added":              "Added",
	"item_removed":            "Removed",
	"specify_item_add":        "Please send a non-empty item name to add.",
	"specify_item_delete":     "Please send a non-empty item name to remove.",
	"select_item_update":      "Pick the item to update.",
	"change_item_status":      "Mark it as done or not done:",
	"mark_done":               "Mark done",
	"mark_not_done":           "Mark not done",
	"item_marked_done":        "Marked as done:",
	"item_marked_not_done":    "Marked as not done:",
	"checklist_unchanged":     "Alright, the checklist stays as it is.",

	"passport":          "Documents",
	"tickets":           "Tickets",
	"boarding_pass":     "Boarding pass",
	"hotel_reservation": "Lodging confirmation",
	"travel_insurance":  "Travel insurance",

	"ask_destination":         "Where are you heading? Send me a destination.",
	"invalid_destination":     "Please send a destination name.",
	"loading_recommendations": "Looking up recommendations, one moment...",
	"no_recommendations":      "No recommendations available at the moment.",
}

var hebrew = map[string]string{
	"choose_language":   "אנא בחר את שפתך",
	"welcome_message":   "ברוכים הבאים! אני יכול לחפש טיסות, לנהל את רשימת הציוד שלכם ולהמליץ מה לראות. מה נעשה?",
	"help_message":      "פקודות:\n/searchflight - חיפוש טיסות\n/checklist - רשימת ציוד\n/recommendations - המלצות ליעד\n/language - החלפת שפה",
	"flight_tickets":    "✈️ כרטיסי טיסה",
	"checklist_journey": "📝 רשימת ציוד לנסיעה",
	"dest_recommend":    "🌍 המלצות ליעד",
	"unknown_action":    "לא הבנתי. שלחו /help כדי לראות מה אני יודע לעשות.",
	"unexpected_error":  "משהו השתבש, נסו שוב.",

	"flight_search_details":       "שלחו לי: עיר יציאה, עיר יעד, תאריך יציאה[, תאריך חזרה]\nלדוגמה: תל אביב, פריז, 01/12/2025, 05/12/2025",
	"provide_all_details_warning": "נא לשלוח 3 או 4 ערכים מופרדים בפסיקים: יציאה, יעד, תאריך יציאה ותאריך חזרה אופציונלי.",
	"correct_format_warning":      "לא הצלחתי לקרוא את התאריך. השתמשו בפורמט יום-חודש-שנה, למשל 01/12/2025.",
	"arrival_date_warning":        "תאריך החזרה לא יכול להיות לפני תאריך היציאה.",
	"departure_date_warning":      "תאריך היציאה לא יכול להיות בעבר.",
	"airport_not_found_warning":   "לא מצאתי שדה תעופה עבור",
	"searching_flights":           "מחפש טיסות",
	"searching_return":            "מחפש טיסות חזרה",
	"one_way":                     "כיוון אחד",
	"available_flights":           "טיסות זמינות",
	"number_of_stops":             "(1), (2) - מספר עצירות",
	"flights_not_found":           "לא נמצאו טיסות למסלול ולתאריכים האלה.",
	"error_fetching_flights":      "חיפוש הטיסות אינו זמין כרגע, נסו שוב מאוחר יותר.",
	"stale_selection":             "התוצאות האלה כבר לא בתוקף. התחילו חיפוש חדש עם /searchflight.",
	"searching_booking":           "מביא פרטי הזמנה...",
	"booking_details":             "פרטי הזמנה",
	"no_booking_link":             "הספק לא החזיר קישור הזמנה לטיסה הזו.",
	"error_fetching_booking":      "לא הצלחתי להביא את פרטי ההזמנה, נסו שוב מאוחר יותר.",

	"airline":        "חברת תעופה",
	"total_duration": "משך כולל",
	"price":          "מחיר",
	"layovers":       "עצירות ביניים",
	"flights":        "טיסות",
	"from":           "מ",
	"to":             "אל",
	"departure":      "יציאה",
	"arrival":        "נחיתה",
	"duration":       "משך",
	"travel_class":   "מחלקה",
	"legroom":        "מרווח רגליים",
	"mins":           "דקות",
	"overnight":      "לילה",
	"on":             "בתאריך",
	"until":          "עד",

	"checklist_prompt":        "מה תרצו לעשות עם רשימת הציוד?",
	"show_checklist":          "📋 הצג את הרשימה שלי",
	"start_checklist":         "🆕 התחל רשימה חדשה",
	"checklist":               "רשימת הציוד שלכם:",
	"confirm_new_checklist":   "פתחתי לכם רשימה חדשה.",
	"modify_checklist_prompt": "רוצים לשנות משהו?",
	"add":                     "הוסף",
	"delete":                  "מחק",
	"update":                  "עדכן סטטוס",
	"keep_as_is":              "השאר כמו שזה",
	"send_item_add":           "שלחו לי את הפריט להוספה.",
	"send_item_delete":        "שלחו לי את הפריט להסרה.",
	"item_added":              "נוסף",
	"item_removed":            "הוסר",
	"specify_item_add":        "נא לשלוח שם פריט לא ריק להוספה.",
	"specify_item_delete":     "נא לשלוח שם פריט לא ריק להסרה.",
	"select_item_update":      "בחרו את הפריט לעדכון.",
	"change_item_status":      "לסמן כבוצע או כלא בוצע:",
	"mark_done":               "סמן כבוצע",
	"mark_not_done":           "סמן כלא בוצע",
	"item_marked_done":        "סומן כבוצע:",
	"item_marked_not_done":    "סומן כלא בוצע:",
	"checklist_unchanged":     "בסדר, הרשימה נשארת כמו שהיא.",

	"passport":          "מסמכים",
	"tickets":           "כרטיסים",
	"boarding_pass":     "כרטיס עלייה למטוס",
	"hotel_reservation": "אישור לינה",
	"travel_insurance":  "ביטוח נסיעות",

	"ask_destination":         "לאן נוסעים? שלחו לי יעד.",
	"invalid_destination":     "נא לשלוח שם יעד.",
	"loading_recommendations": "מחפש המלצות, רגע אחד...",
	"no_recommendations":      "אין המלצות זמינות כרגע.",
}

var russian = map[string]string{
	"choose_language":   "Пожалуйста, выберите язык",
	"welcome_message":   "Добро пожаловать! Я ищу авиабилеты, веду ваш дорожный чек-лист и подсказываю, что посмотреть. С чего начнём?",
	"help_message":      "Команды:\n/searchflight - поиск авиабилетов\n/checklist - дорожный чек-лист\n/recommendations - советы по направлению\n/language - сменить язык",
	"flight_tickets":    "✈️ Авиабилеты",
	"checklist_journey": "📝 Дорожный чек-лист",
	"dest_recommend":    "🌍 Советы по направлению",
	"unknown_action":    "Я не понял. Отправьте /help, чтобы увидеть список команд.",
	"unexpected_error":  "Что-то пошло не так, попробуйте ещё раз.",

	"flight_search_details":       "Отправьте: город вылета, город прилёта, дата вылета[, дата возврата]\nНапример: Тель-Авив, Париж, 01/12/2025, 05/12/2025",
	"provide_all_details_warning": "Нужно 3 или 4 значения через запятую: вылет, прилёт, дата вылета и необязательная дата возврата.",
	"correct_format_warning":      "Не удалось разобрать дату. Используйте формат день-месяц-год, например 01/12/2025.",
	"arrival_date_warning":        "Дата возврата не может быть раньше даты вылета.",
	"departure_date_warning":      "Дата вылета не может быть в прошлом.",
	"airport_not_found_warning":   "Не нашёл аэропорт для",
	"searching_flights":           "Ищу рейсы",
	"searching_return":            "Ищу обратные рейсы",
	"one_way":                     "в одну сторону",
	"available_flights":           "Доступные рейсы",
	"number_of_stops":             "(1), (2) - число пересадок",
	"flights_not_found":           "Рейсы по этому маршруту и датам не найдены.",
	"error_fetching_flights":      "Поиск рейсов сейчас недоступен, попробуйте позже.",
	"stale_selection":             "Эти результаты устарели. Начните новый поиск командой /searchflight.",
	"searching_booking":           "Получаю детали бронирования...",
	"booking_details":             "Детали бронирования",
	"no_booking_link":             "Провайдер не вернул ссылку на бронирование этого рейса.",
	"error_fetching_booking":      "Не удалось получить детали бронирования, попробуйте позже.",

	"airline":        "Авиакомпания",
	"total_duration": "Общее время",
	"price":          "Цена",
	"layovers":       "Пересадки",
	"flights":        "Рейсы",
	"from":           "Откуда",
	"to":             "Куда",
	"departure":      "Вылет",
	"arrival":        "Прилёт",
	"duration":       "В пути",
	"travel_class":   "Класс",
	"legroom":        "Место для ног",
	"mins":           "мин",
	"overnight":      "ночной",
	"on":             "на",
	"until":          "до",

	"checklist_prompt":        "Что сделать с вашим чек-листом?",
	"show_checklist":          "📋 Показать мой чек-лист",
	"start_checklist":         "🆕 Начать новый чек-лист",
	"checklist":               "Ваш дорожный чек-лист:",
	"confirm_new_checklist":   "Завёл вам новый чек-лист.",
	"modify_checklist_prompt": "Хотите что-нибудь изменить?",
	"add":                     "Добавить",
	"delete":                  "Удалить",
	"update":                  "Обновить статус",
	"keep_as_is":              "Оставить как есть",
	"send_item_add":           "Отправьте пункт, который нужно добавить.",
	"send_item_delete":        "Отправьте пункт, который нужно удалить.",
	"item_added":              "Добавлено",
	"item_removed":            "Удалено",
	"specify_item_add":        "Отправьте непустое название пункта для добавления.",
	"specify_item_delete":     "Отправьте непустое название пункта для удаления.",
	"select_item_update":      "Выберите пункт для обновления.",
	"change_item_status":      "Отметить как выполнено или нет:",
	"mark_done":               "Выполнено",
	"mark_not_done":           "Не выполнено",
	"item_marked_done":        "Отмечено как выполненное:",
	"item_marked_not_done":    "Отмечено как невыполненное:",
	"checklist_unchanged":     "Хорошо, чек-лист остаётся без изменений.",

	"passport":          "Документы",
	"tickets":           "Билеты",
	"boarding_pass":     "Посадочный талон",
	"hotel_reservation": "Подтверждение жилья",
	"travel_insurance":  "Страховка",

	"ask_destination":         "Куда направляетесь? Отправьте мне направление.",
	"invalid_destination":     "Пожалуйста, отправьте название направления.",
	"loading_recommendations": "Подбираю рекомендации, секунду...",
	"no_recommendations":      "Рекомендаций пока нет.",
}

var arabic = map[string]string{
	"choose_language":   "الرجاء اختيار لغة",
	"welcome_message":   "أهلاً بك! أستطيع البحث عن رحلات الطيران وإدارة قائمة السفر وتقديم توصيات عن الوجهة. ماذا نفعل؟",
	"help_message":      "الأوامر:\n/searchflight - البحث عن رحلات\n/checklist - قائمة السفر\n/recommendations - توصيات الوجهة\n/language - تغيير اللغة",
	"flight_tickets":    "✈️ تذاكر طيران",
	"checklist_journey": "📝 قائمة السفر",
	"dest_recommend":    "🌍 توصيات الوجهة",
	"unknown_action":    "لم أفهم. أرسل /help لعرض الأوامر.",
	"unexpected_error":  "حدث خطأ ما، حاول مرة أخرى.",

	"flight_search_details":       "أرسل لي: مدينة المغادرة، مدينة الوصول، تاريخ المغادرة[، تاريخ العودة]\nمثال: تل أبيب، باريس، 01/12/2025، 05/12/2025",
	"provide_all_details_warning": "يرجى إرسال 3 أو 4 قيم مفصولة بفواصل: المغادرة، الوصول، تاريخ المغادرة وتاريخ عودة اختياري.",
	"correct_format_warning":      "تعذر قراءة التاريخ. استخدم صيغة يوم-شهر-سنة، مثل 01/12/2025.",
	"arrival_date_warning":        "لا يمكن أن يكون تاريخ العودة قبل تاريخ المغادرة.",
	"departure_date_warning":      "لا يمكن أن يكون تاريخ المغادرة في الماضي.",
	"airport_not_found_warning":   "لم أجد مطاراً لـ",
	"searching_flights":           "أبحث عن رحلات",
	"searching_return":            "أبحث عن رحلات العودة",
	"one_way":                     "اتجاه واحد",
	"available_flights":           "الرحلات المتاحة",
	"number_of_stops":             "(1), (2) - عدد التوقفات",
	"flights_not_found":           "لم يتم العثور على رحلات لهذا المسار والتواريخ.",
	"error_fetching_flights":      "البحث عن الرحلات غير متاح حالياً، حاول لاحقاً.",
	"stale_selection":             "هذه النتائج لم تعد صالحة. ابدأ بحثاً جديداً بـ /searchflight.",
	"searching_booking":           "أجلب تفاصيل الحجز...",
	"booking_details":             "تفاصيل الحجز",
	"no_booking_link":             "لم يُرجع المزود رابط حجز لهذه الرحلة.",
	"error_fetching_booking":      "تعذر جلب تفاصيل الحجز، حاول لاحقاً.",

	"airline":        "شركة الطيران",
	"total_duration": "المدة الإجمالية",
	"price":          "السعر",
	"layovers":       "التوقفات",
	"flights":        "الرحلات",
	"from":           "من",
	"to":             "إلى",
	"departure":      "المغادرة",
	"arrival":        "الوصول",
	"duration":       "المدة",
	"travel_class":   "الدرجة",
	"legroom":        "مساحة القدمين",
	"mins":           "دقيقة",
	"overnight":      "ليلية",
	"on":             "في",
	"until":          "حتى",

	"checklist_prompt":        "ماذا تريد أن تفعل بقائمة السفر؟",
	"show_checklist":          "📋 عرض قائمتي",
	"start_checklist":         "🆕 بدء قائمة جديدة",
	"checklist":               "قائمة السفر الخاصة بك:",
	"confirm_new_checklist":   "أنشأت لك قائمة جديدة.",
	"modify_checklist_prompt": "هل تريد تغيير أي شيء؟",
	"add":                     "إضافة",
	"delete":                  "حذف",
	"update":                  "تحديث الحالة",
	"keep_as_is":              "اتركها كما هي",
	"send_item_add":           "أرسل لي العنصر المراد إضافته.",
	"send_item_delete":        "أرسل لي العنصر المراد حذفه.",
	"item_added":              "تمت إضافة",
	"item_removed":            "تمت إزالة",
	"specify_item_add":        "يرجى إرسال اسم عنصر غير فارغ للإضافة.",
	"specify_item_delete":     "يرجى إرسال اسم عنصر غير فارغ للحذف.",
	"select_item_update":      "اختر العنصر المراد تحديثه.",
	"change_item_status":      "وضع علامة منجز أو غير منجز:",
	"mark_done":               "منجز",
	"mark_not_done":           "غير منجز",
	"item_marked_done":        "تم وضع علامة منجز:",
	"item_marked_not_done":    "تم وضع علامة غير منجز:",
	"checklist_unchanged":     "حسناً، تبقى القائمة كما هي.",

	"passport":          "الوثائق",
	"tickets":           "التذاكر",
	"boarding_pass":     "بطاقة الصعود",
	"hotel_reservation": "تأكيد الإقامة",
	"travel_insurance":  "تأمين السفر",

	"ask_destination":         "إلى أين أنت ذاهب؟ أرسل لي وجهة.",
	"invalid_destination":     "يرجى إرسال اسم وجهة.",
	"loading_recommendations": "أبحث عن التوصيات، لحظة واحدة...",
	"no_recommendations":      "لا توجد توصيات متاحة حالياً.",
}

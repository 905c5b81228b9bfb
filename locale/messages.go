package locale

// Message keys
const (
	MsgShow            = "show"
	MsgEntries         = "entries"
	MsgNumberOfEntries = "numberOfEntries"

	MsgCategories  = "categories"
	MsgAddCategory = "addCategory"
	MsgLogout      = "logout"
	MsgAdminTitle  = "adminTitle"

	MsgAddService    = "addService"
	MsgAddNewService = "addNewService"
	MsgEditService   = "editService"

	MsgServiceAdded         = "serviceAdded"
	MsgServiceUpdated       = "serviceUpdated"
	MsgServiceDeleted       = "serviceDeleted"
	MsgCategoryCreated      = "categoryCreated"
	MsgCategoryUpdated      = "categoryUpdated"
	MsgCategoryDeleted      = "categoryDeleted"
	MsgCategoryNameTooShort = "categoryNameTooShort"
	MsgPlanCreated          = "planCreated"
	MsgPlanUpdated          = "planUpdated"
	MsgPlanDeleted          = "planDeleted"
	MsgUnexpectedError      = "unexpectedError"
	MsgUnauthorizedAccess   = "unauthorizedAccess"
	MsgLoginFailed          = "loginFailed"
	MsgEmailRequired        = "emailRequired"
	MsgInvalidEmail         = "invalidEmail"
	MsgPasswordRequired     = "passwordRequired"
	MsgProviderRequired     = "providerRequired"
	MsgTitleRequired        = "titleRequired"
	MsgImageRequired        = "imageRequired"
	MsgDescriptionRequired  = "descriptionRequired"
	MsgURLRequired          = "urlRequired"
	MsgURLInvalid           = "urlInvalid"
	MsgCountryRequired      = "countryRequired"
	MsgNameRequired         = "nameRequired"
	MsgPriceInvalid         = "priceInvalid"
	MsgBillingCycleInvalid  = "billingCycleInvalid"
	MsgFieldInvalid         = "fieldInvalid"
)

var english = map[string]string{
	MsgShow:            "Show",
	MsgEntries:         "entries",
	MsgNumberOfEntries: "Showing %[1]d to %[2]d of %[3]d entries",

	MsgCategories:  "Categories",
	MsgAddCategory: "Add Category",
	MsgLogout:      "Logout",
	MsgAdminTitle:  "Merge Admin",

	MsgAddService:    "Add Service",
	MsgAddNewService: "Add New Service",
	MsgEditService:   "Edit Service",

	MsgServiceAdded:         "Service added successfully",
	MsgServiceUpdated:       "Service updated successfully",
	MsgServiceDeleted:       "Service deleted successfully",
	MsgCategoryCreated:      "Category created successfully.",
	MsgCategoryUpdated:      "Category updated successfully.",
	MsgCategoryDeleted:      "Category deleted successfully.",
	MsgCategoryNameTooShort: "Category name must be at least 3 characters long.",
	MsgPlanCreated:          "New plan created successfully",
	MsgPlanUpdated:          "Plan updated successfully",
	MsgPlanDeleted:          "Plan deleted successfully",
	MsgUnexpectedError:      "An error occurred. Please try again.",
	MsgUnauthorizedAccess:   "Unauthorized access.",
	MsgLoginFailed:          "Login failed. Please try again.",
	MsgEmailRequired:        "Email is required",
	MsgInvalidEmail:         "Email is invalid",
	MsgPasswordRequired:     "Password is required",
	MsgProviderRequired:     "Provider name is required",
	MsgTitleRequired:        "Title is required",
	MsgImageRequired:        "Image is required",
	MsgDescriptionRequired:  "Description is required",
	MsgURLRequired:          "URL is required",
	MsgURLInvalid:           "Please enter a valid URL",
	MsgCountryRequired:      "Country is required",
	MsgNameRequired:         "Name is required",
	MsgPriceInvalid:         "Price must be greater than zero",
	MsgBillingCycleInvalid:  "Billing cycle must be monthly or yearly",
	MsgFieldInvalid:         "%s is invalid",
}

var arabic = map[string]string{
	MsgShow:            "عرض",
	MsgEntries:         "إدخالات",
	MsgNumberOfEntries: "عرض %[1]d إلى %[2]d من %[3]d إدخالات",

	MsgCategories:  "الفئات",
	MsgAddCategory: "إضافة فئة",
	MsgLogout:      "تسجيل الخروج",
	MsgAdminTitle:  "إدارة ميرج",

	MsgAddService:    "إضافة خدمة",
	MsgAddNewService: "إضافة خدمة جديدة",
	MsgEditService:   "تعديل الخدمة",

	MsgServiceAdded:         "تمت إضافة الخدمة بنجاح",
	MsgServiceUpdated:       "تم تحديث الخدمة بنجاح",
	MsgServiceDeleted:       "تم حذف الخدمة بنجاح",
	MsgCategoryCreated:      "تم إنشاء الفئة بنجاح.",
	MsgCategoryUpdated:      "تم تحديث الفئة بنجاح.",
	MsgCategoryDeleted:      "تم حذف الفئة بنجاح.",
	MsgCategoryNameTooShort: "يجب أن يتكون اسم الفئة من 3 أحرف على الأقل.",
	MsgPlanCreated:          "تم إنشاء الخطة بنجاح",
	MsgPlanUpdated:          "تم تحديث الخطة بنجاح",
	MsgPlanDeleted:          "تم حذف الخطة بنجاح",
	MsgUnexpectedError:      "حدث خطأ. يرجى المحاولة مرة أخرى.",
	MsgUnauthorizedAccess:   "وصول غير مصرح به.",
	MsgLoginFailed:          "فشل تسجيل الدخول. يرجى المحاولة مرة أخرى.",
	MsgEmailRequired:        "البريد الإلكتروني مطلوب",
	MsgInvalidEmail:         "البريد الإلكتروني غير صالح",
	MsgPasswordRequired:     "كلمة المرور مطلوبة",
	MsgProviderRequired:     "اسم المزود مطلوب",
	MsgTitleRequired:        "العنوان مطلوب",
	MsgImageRequired:        "الصورة مطلوبة",
	MsgDescriptionRequired:  "الوصف مطلوب",
	MsgURLRequired:          "الرابط مطلوب",
	MsgURLInvalid:           "الرجاء إدخال رابط صالح",
	MsgCountryRequired:      "الدولة مطلوبة",
	MsgNameRequired:         "الاسم مطلوب",
	MsgPriceInvalid:         "يجب أن يكون السعر أكبر من صفر",
	MsgBillingCycleInvalid:  "يجب أن تكون دورة الفوترة شهرية أو سنوية",
	MsgFieldInvalid:         "%s غير صالح",
}

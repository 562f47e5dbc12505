package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 支持的语言
const (
	LocaleArabic  = "ar-EG"
	LocaleEnglish = "en-US"
)

var defaultLocale = LocaleArabic

// SetDefaultLocale 设置兜底语言（启动时由配置注入）
func SetDefaultLocale(locale string) {
	if normalized := normalizeLocale(locale); normalized != "" {
		defaultLocale = normalized
	}
}

// DefaultLocale 返回兜底语言
func DefaultLocale() string {
	return defaultLocale
}

// ResolveLocale 解析请求语言：query 参数优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return defaultLocale
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(lang); locale != "" {
			return locale
		}
	}
	return defaultLocale
}

// T 按语言取文案，未命中时回退英文，再回退 key 本身
func T(locale, key string) string {
	if messages, ok := catalog[normalizeOrDefault(locale)]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog[LocaleEnglish][key]; ok {
		return msg
	}
	return key
}

// Sprintf 按语言取文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeOrDefault(locale string) string {
	if normalized := normalizeLocale(locale); normalized != "" {
		return normalized
	}
	return defaultLocale
}

func normalizeLocale(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "ar"):
		return LocaleArabic
	case strings.HasPrefix(value, "en"):
		return LocaleEnglish
	default:
		return ""
	}
}

var catalog = map[string]map[string]string{
	LocaleEnglish: {
		"error.bad_request":              "invalid request",
		"error.internal":                 "internal server error",
		"error.unauthorized":             "login required",
		"error.not_found":                "resource not found",
		"error.token_invalid":            "invalid or expired token",
		"error.auth_header_missing":      "authorization header missing",
		"error.auth_header_invalid":      "authorization header invalid",
		"error.jwt_secret_missing":       "jwt secret not configured",
		"error.invalid_credentials":      "email or password is incorrect",
		"error.account_disabled":         "your account is disabled, please contact support",
		"error.email_exists":             "this email is already registered",
		"error.password_policy":          "password does not meet the security policy",
		"error.product_not_found":        "product not found",
		"error.order_not_found":          "order not found",
		"error.customer_not_found":       "customer not found",
		"error.cart_empty":               "your cart is empty",
		"error.cart_item_invalid":        "invalid cart item",
		"error.shipping_fields_required": "name, phone and address are required",
		"error.order_create_failed":      "failed to create order",
		"error.order_fetch_failed":       "failed to load orders",
		"error.status_invalid":           "unknown order status",
		"error.status_transition_denied": "order status cannot change this way",
		"error.review_exists":            "you have already reviewed this product",
		"error.review_not_found":         "review not found",
		"error.review_rating_invalid":    "rating must be between 1 and 5",
		"error.wishlist_duplicate":       "product is already in your wishlist",
		"error.upload_too_large":         "file exceeds the maximum allowed size",
		"error.upload_extension_denied":  "file extension is not allowed",
		"error.upload_type_denied":       "file type is not allowed",
		"error.captcha_required":         "captcha is required",
		"error.captcha_invalid":          "captcha verification failed",
		"error.rate_limited":             "too many requests, retry in %d seconds",
		"error.login_too_many":           "too many login attempts, retry in %d seconds",
		"error.rate_limit_unavailable":   "rate limiter unavailable",
		"error.price_invalid":            "price must not be negative",
		"error.email_disabled":           "email sending is disabled",
		"error.email_not_configured":     "smtp settings are incomplete",
		"error.email_invalid":            "recipient address is invalid",
		"error.email_send_failed":        "failed to send email",
		"msg.email_test_sent":            "test email sent",
		"msg.register_success":           "registered successfully, you can now log in",
		"msg.password_changed":           "password changed successfully",
		"msg.login_success":              "welcome back, %s!",
		"msg.review_added":               "your review has been added!",
		"msg.added_to_cart":              "product added to cart!",
		"msg.removed_from_cart":          "product removed from cart",
		"msg.added_to_wishlist":          "product added to wishlist!",
		"msg.removed_from_wishlist":      "product removed from wishlist",
		"msg.order_created":              "your order has been placed, we will contact you soon",
		"msg.customer_enabled":           "customer account enabled",
		"msg.customer_disabled":          "customer account disabled",
		"error.password_min_length":      "password must be at least %d characters",
		"error.password_require_upper":   "password must contain an uppercase letter",
		"error.password_require_lower":   "password must contain a lowercase letter",
		"error.password_require_number":  "password must contain a digit",
		"order.status.pending":           "pending",
		"order.status.shipped":           "shipped",
		"order.status.delivered":         "delivered",
		"order.status.canceled":          "canceled",
		"whatsapp.greeting":              "Hello, I would like to order:",
		"whatsapp.line":                  "- %s x%d (%s %s)",
		"whatsapp.total":                 "Total: %s %s",
		"email.order_created_subject":    "Order %s received",
		"email.order_created_body":       "Thank you! We received your order %s with a total of %s %s. Current status: %s.",
		"email.order_status_subject":     "Order %s update",
		"email.order_status_body":        "Your order %s is now %s.",
	},
	LocaleArabic: {
		"error.bad_request":              "طلب غير صالح",
		"error.internal":                 "حدث خطأ في الخادم",
		"error.unauthorized":             "يجب تسجيل الدخول أولاً",
		"error.not_found":                "العنصر غير موجود",
		"error.token_invalid":            "جلسة غير صالحة أو منتهية",
		"error.auth_header_missing":      "بيانات الدخول مفقودة",
		"error.auth_header_invalid":      "بيانات الدخول غير صالحة",
		"error.jwt_secret_missing":       "لم يتم ضبط مفتاح الجلسات",
		"error.invalid_credentials":      "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"error.account_disabled":         "حسابك معطل. تواصل مع الإدارة",
		"error.email_exists":             "البريد الإلكتروني مستخدم بالفعل",
		"error.password_policy":          "كلمة المرور لا تحقق شروط الأمان",
		"error.product_not_found":        "المنتج غير موجود",
		"error.order_not_found":          "الطلب غير موجود",
		"error.customer_not_found":       "العميل غير موجود",
		"error.cart_empty":               "السلة فارغة!",
		"error.cart_item_invalid":        "عنصر سلة غير صالح",
		"error.shipping_fields_required": "الاسم ورقم الهاتف والعنوان مطلوبة",
		"error.order_create_failed":      "تعذر إنشاء الطلب",
		"error.order_fetch_failed":       "تعذر تحميل الطلبات",
		"error.status_invalid":           "حالة طلب غير معروفة",
		"error.status_transition_denied": "لا يمكن تغيير حالة الطلب بهذا الشكل",
		"error.review_exists":            "لقد قمت بتقييم هذا المنتج من قبل",
		"error.review_not_found":         "التقييم غير موجود",
		"error.review_rating_invalid":    "التقييم يجب أن يكون بين 1 و 5",
		"error.wishlist_duplicate":       "المنتج موجود بالفعل في المفضلة",
		"error.upload_too_large":         "حجم الملف أكبر من الحد المسموح",
		"error.upload_extension_denied":  "امتداد الملف غير مسموح",
		"error.upload_type_denied":       "نوع الملف غير مسموح",
		"error.captcha_required":         "رمز التحقق مطلوب",
		"error.captcha_invalid":          "فشل التحقق من الرمز",
		"error.rate_limited":             "محاولات كثيرة، أعد المحاولة بعد %d ثانية",
		"error.login_too_many":           "محاولات دخول كثيرة، أعد المحاولة بعد %d ثانية",
		"error.rate_limit_unavailable":   "خدمة الحماية غير متاحة",
		"error.price_invalid":            "السعر لا يمكن أن يكون سالباً",
		"error.email_disabled":           "إرسال البريد الإلكتروني معطل",
		"error.email_not_configured":     "إعدادات SMTP غير مكتملة",
		"error.email_invalid":            "عنوان البريد الإلكتروني غير صالح",
		"error.email_send_failed":        "تعذر إرسال البريد الإلكتروني",
		"msg.email_test_sent":            "تم إرسال البريد التجريبي",
		"msg.register_success":           "تم التسجيل بنجاح! يمكنك تسجيل الدخول الآن",
		"msg.password_changed":           "تم تغيير كلمة المرور بنجاح",
		"msg.login_success":              "أهلاً %s!",
		"msg.review_added":               "تم إضافة تقييمك بنجاح!",
		"msg.added_to_cart":              "تم إضافة المنتج للسلة!",
		"msg.removed_from_cart":          "تم حذف المنتج من السلة",
		"msg.added_to_wishlist":          "تم إضافة المنتج للمفضلة!",
		"msg.removed_from_wishlist":      "تم حذف المنتج من المفضلة",
		"msg.order_created":              "تم إرسال طلبك بنجاح! سنتواصل معك قريباً",
		"msg.customer_enabled":           "تم تفعيل حساب العميل",
		"msg.customer_disabled":          "تم تعطيل حساب العميل",
		"error.password_min_length":      "كلمة المرور يجب أن تكون %d أحرف على الأقل",
		"error.password_require_upper":   "كلمة المرور يجب أن تحتوي على حرف كبير",
		"error.password_require_lower":   "كلمة المرور يجب أن تحتوي على حرف صغير",
		"error.password_require_number":  "كلمة المرور يجب أن تحتوي على رقم",
		"order.status.pending":           "قيد الانتظار",
		"order.status.shipped":           "تم الشحن",
		"order.status.delivered":         "تم التوصيل",
		"order.status.canceled":          "ملغي",
		"whatsapp.greeting":              "السلام عليكم، أريد طلب:",
		"whatsapp.line":                  "• %s - الكمية: %d - السعر: %s %s",
		"whatsapp.total":                 "الإجمالي: %s %s",
		"email.order_created_subject":    "تم استلام الطلب %s",
		"email.order_created_body":       "شكراً لك! استلمنا طلبك %s بقيمة %s %s. الحالة الحالية: %s.",
		"email.order_status_subject":     "تحديث الطلب %s",
		"email.order_status_body":        "طلبك %s الآن في حالة %s.",
	},
}

package rowmap

// Column aliases per logical field, in priority order. The localized
// headers come first because that is what the legacy export files use;
// the English spellings cover files produced by this tool's own export.
// Keep these data-driven: new header spellings belong here, not in call
// sites.
var (
	aliasCustomerName    = []string{"ФИО", "full_name", "name"}
	aliasCustomerContact = []string{"Контактная информация", "contact_info"}
	aliasCustomerEmail   = []string{"Email", "email"}
	aliasCustomerPhone   = []string{"Телефон", "phone"}
	aliasCustomerRegDate = []string{"Дата регистрации", "registration_date"}
	aliasCustomerNotes   = []string{"Примечания", "notes"}

	aliasOrderID       = []string{"ID_заказа", "order_id"}
	aliasOrderCustomer = []string{"ФИО_клиента", "client_name", "customer_name"}
	aliasOrderDate     = []string{"Дата_заказа", "order_date", "date"}
	aliasOrderTitle    = []string{"Название_книги", "product_name", "book_title"}
	aliasOrderAuthor   = []string{"Автор", "author"}
	aliasOrderGenre    = []string{"Жанр", "genre"}
	aliasOrderQuantity = []string{"Количество", "quantity"}
	aliasOrderPrice    = []string{"Цена_за_шт", "price"}
	aliasOrderDiscount = []string{"Скидка_%", "discount"}
	aliasOrderStatus   = []string{"Статус_заказа", "status"}
	aliasOrderDelivery = []string{"Способ_доставки", "delivery_method"}
	aliasOrderNotes    = []string{"Примечание_к_заказу", "order_notes", "notes"}
)

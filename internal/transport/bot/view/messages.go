// Package view тексты и клавиатуры командного бота.
package view

const (
	StartMessage = `👋 <b>Лента сделок</b>

/status: состояние и фильтры
/deals: текущая выдача
/category <code>food</code>: категория (all, food, transport, housing, shopping, services)
/within <code>24h</code>: окно по времени (all, 24h, 48h, 72h)
/search <code>текст</code>: поиск; без текста сбрасывает
/sort <code>ending-soon</code>: порядок (none, ending-soon, discount)
/reset: сбросить фильтры
/rearm: снова уведомлять о горящих сделках
/startwatch, /stopwatch: запуск и остановка наблюдателя`

	FiltersReset  = "✅ Фильтры сброшены"
	AlertsRearmed = "🔔 Уведомления снова включены для всех сделок"

	InvalidArgument = "❌ %s"

	WatcherStarted        = "🟢 Наблюдатель запущен"
	WatcherStopped        = "🔴 Наблюдатель остановлен"
	WatcherAlreadyRunning = "⚠️ Наблюдатель уже запущен"
	WatcherNotRunning     = "⚠️ Наблюдатель не запущен"
	WatcherStartFailed    = "❌ Ошибка запуска наблюдателя: %v"

	FeedEmpty = "📭 Под фильтры ничего не подходит"
)

package types

// ContextKey — тип ключей для значений в контексте команд.
type ContextKey string

// ClientAppKey — ключ, под которым собранное приложение кладётся
// в контекст команды в PersistentPreRunE.
const ClientAppKey ContextKey = "clientApp"

package repository

// KeyValueStore puerto de persistencia clave/valor con valores JSON.
// Es el contrato mínimo del almacenamiento: obtener, guardar y borrar un
// valor con nombre. Las implementaciones viven en infrastructure/kvstore.
type KeyValueStore interface {
	// Get deserializa el valor de la clave en out. Devuelve false si la
	// clave no existe (out queda intacto).
	Get(key string, out any) (bool, error)
	// Set serializa value como JSON y lo guarda bajo la clave.
	Set(key string, value any) error
	// Remove borra la clave. Borrar una clave inexistente no es error.
	Remove(key string) error
	Close() error
}

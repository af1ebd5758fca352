// Package websocket pushes route events to browser and tool clients.
//
// A central Hub owns every connection. Each client gets a write goroutine
// (messages and pings) and a read goroutine (pongs and close detection);
// all bookkeeping happens on the hub's own goroutine.
//
// Message Protocol:
//
// Outgoing frames are single JSON objects:
//
//	{"scene": "demo", "event": "path_found", "data": {...}}
//
// event is one of the events package names. Incoming frames are ignored.
//
// Scene Filtering:
//
// Clients pick a scene when connecting (ServeWS's scene argument, usually
// taken from ?scene=). They receive that scene's messages only. Clients
// connected without a scene receive everything.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//	hub.Subscribe(bus)
//
//	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("scene"))
//	})
package websocket

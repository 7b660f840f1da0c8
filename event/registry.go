package event

var (
	typeToName = map[EventType]string{
		EventNone:   "None",
		EventJump:   "Jump",
		EventFire:   "Fire",
		EventMove:   "Move",
		EventSprint: "Sprint",
		EventPause:  "Pause",
	}
	nameToType = make(map[string]EventType, len(typeToName))
)

func init() {
	for et, name := range typeToName {
		nameToType[name] = et
	}
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// Types returns all concrete event types in declaration order
func Types() []EventType {
	return []EventType{EventJump, EventFire, EventMove, EventSprint, EventPause}
}

package common

// SessionKey is the persistence key holding the serialized session snapshot.
const SessionKey = "healthguard_user"

package command

import (
	"sort"
	"strings"
)

// Definition ties a command kind to the identifiers that select it.
// Names[0] is the canonical identifier; further names are synonyms.
type Definition struct {
	Kind  Kind
	Group Group
	Names []string
}

var definitions = []Definition{
	// Program-wide commands.
	{DisableNotifications, GroupProgram, []string{"DISABLE_NOTIFICATIONS", "ENTER_STANDBY_MODE"}},
	{EnableNotifications, GroupProgram, []string{"ENABLE_NOTIFICATIONS", "ENTER_ACTIVE_MODE"}},
	{DisableNotificationsExpireTime, GroupProgram, []string{"DISABLE_NOTIFICATIONS_EXPIRE_TIME"}},
	{ShutdownProcess, GroupProgram, []string{"SHUTDOWN_PROCESS", "SHUTDOWN_PROGRAM"}},
	{RestartProcess, GroupProgram, []string{"RESTART_PROCESS", "RESTART_PROGRAM"}},
	{SaveStateInformation, GroupProgram, []string{"SAVE_STATE_INFORMATION"}},
	{ReadStateInformation, GroupProgram, []string{"READ_STATE_INFORMATION"}},
	{SyncStateInformation, GroupProgram, []string{"SYNC_STATE_INFORMATION"}},
	{EnableEventHandlers, GroupProgram, []string{"ENABLE_EVENT_HANDLERS"}},
	{DisableEventHandlers, GroupProgram, []string{"DISABLE_EVENT_HANDLERS"}},
	{FlushPendingCommands, GroupProgram, []string{"FLUSH_PENDING_COMMANDS"}},
	{EnableFailurePrediction, GroupProgram, []string{"ENABLE_FAILURE_PREDICTION"}},
	{DisableFailurePrediction, GroupProgram, []string{"DISABLE_FAILURE_PREDICTION"}},
	{EnablePerformanceData, GroupProgram, []string{"ENABLE_PERFORMANCE_DATA"}},
	{DisablePerformanceData, GroupProgram, []string{"DISABLE_PERFORMANCE_DATA"}},
	{StartExecutingHostChecks, GroupProgram, []string{"START_EXECUTING_HOST_CHECKS"}},
	{StopExecutingHostChecks, GroupProgram, []string{"STOP_EXECUTING_HOST_CHECKS"}},
	{StartExecutingSvcChecks, GroupProgram, []string{"START_EXECUTING_SVC_CHECKS"}},
	{StopExecutingSvcChecks, GroupProgram, []string{"STOP_EXECUTING_SVC_CHECKS"}},
	{StartAcceptingPassiveHostChecks, GroupProgram, []string{"START_ACCEPTING_PASSIVE_HOST_CHECKS"}},
	{StopAcceptingPassiveHostChecks, GroupProgram, []string{"STOP_ACCEPTING_PASSIVE_HOST_CHECKS"}},
	{StartAcceptingPassiveSvcChecks, GroupProgram, []string{"START_ACCEPTING_PASSIVE_SVC_CHECKS"}},
	{StopAcceptingPassiveSvcChecks, GroupProgram, []string{"STOP_ACCEPTING_PASSIVE_SVC_CHECKS"}},
	{StartObsessingOverHostChecks, GroupProgram, []string{"START_OBSESSING_OVER_HOST_CHECKS"}},
	{StopObsessingOverHostChecks, GroupProgram, []string{"STOP_OBSESSING_OVER_HOST_CHECKS"}},
	{StartObsessingOverSvcChecks, GroupProgram, []string{"START_OBSESSING_OVER_SVC_CHECKS"}},
	{StopObsessingOverSvcChecks, GroupProgram, []string{"STOP_OBSESSING_OVER_SVC_CHECKS"}},
	{EnableFlapDetection, GroupProgram, []string{"ENABLE_FLAP_DETECTION"}},
	{DisableFlapDetection, GroupProgram, []string{"DISABLE_FLAP_DETECTION"}},
	{ChangeGlobalHostEventHandler, GroupProgram, []string{"CHANGE_GLOBAL_HOST_EVENT_HANDLER"}},
	{ChangeGlobalSvcEventHandler, GroupProgram, []string{"CHANGE_GLOBAL_SVC_EVENT_HANDLER"}},
	{EnableServiceFreshnessChecks, GroupProgram, []string{"ENABLE_SERVICE_FRESHNESS_CHECKS"}},
	{DisableServiceFreshnessChecks, GroupProgram, []string{"DISABLE_SERVICE_FRESHNESS_CHECKS"}},
	{EnableHostFreshnessChecks, GroupProgram, []string{"ENABLE_HOST_FRESHNESS_CHECKS"}},
	{DisableHostFreshnessChecks, GroupProgram, []string{"DISABLE_HOST_FRESHNESS_CHECKS"}},

	// Host commands.
	{AddHostComment, GroupHost, []string{"ADD_HOST_COMMENT"}},
	{DelHostComment, GroupHost, []string{"DEL_HOST_COMMENT"}},
	{DelAllHostComments, GroupHost, []string{"DEL_ALL_HOST_COMMENTS"}},
	{DelayHostNotification, GroupHost, []string{"DELAY_HOST_NOTIFICATION"}},
	{EnableHostNotifications, GroupHost, []string{"ENABLE_HOST_NOTIFICATIONS"}},
	{DisableHostNotifications, GroupHost, []string{"DISABLE_HOST_NOTIFICATIONS"}},
	{EnableAllNotificationsBeyondHost, GroupHost, []string{"ENABLE_ALL_NOTIFICATIONS_BEYOND_HOST"}},
	{DisableAllNotificationsBeyondHost, GroupHost, []string{"DISABLE_ALL_NOTIFICATIONS_BEYOND_HOST"}},
	{EnableHostAndChildNotifications, GroupHost, []string{"ENABLE_HOST_AND_CHILD_NOTIFICATIONS"}},
	{DisableHostAndChildNotifications, GroupHost, []string{"DISABLE_HOST_AND_CHILD_NOTIFICATIONS"}},
	{EnableHostSvcNotifications, GroupHost, []string{"ENABLE_HOST_SVC_NOTIFICATIONS"}},
	{DisableHostSvcNotifications, GroupHost, []string{"DISABLE_HOST_SVC_NOTIFICATIONS"}},
	{EnableHostSvcChecks, GroupHost, []string{"ENABLE_HOST_SVC_CHECKS"}},
	{DisableHostSvcChecks, GroupHost, []string{"DISABLE_HOST_SVC_CHECKS"}},
	{EnablePassiveHostChecks, GroupHost, []string{"ENABLE_PASSIVE_HOST_CHECKS"}},
	{DisablePassiveHostChecks, GroupHost, []string{"DISABLE_PASSIVE_HOST_CHECKS"}},
	{ScheduleHostSvcChecks, GroupHost, []string{"SCHEDULE_HOST_SVC_CHECKS"}},
	{ScheduleForcedHostSvcChecks, GroupHost, []string{"SCHEDULE_FORCED_HOST_SVC_CHECKS"}},
	{AcknowledgeHostProblem, GroupHost, []string{"ACKNOWLEDGE_HOST_PROBLEM"}},
	{AcknowledgeHostProblemExpire, GroupHost, []string{"ACKNOWLEDGE_HOST_PROBLEM_EXPIRE"}},
	{RemoveHostAcknowledgement, GroupHost, []string{"REMOVE_HOST_ACKNOWLEDGEMENT"}},
	{EnableHostEventHandler, GroupHost, []string{"ENABLE_HOST_EVENT_HANDLER"}},
	{DisableHostEventHandler, GroupHost, []string{"DISABLE_HOST_EVENT_HANDLER"}},
	{EnableHostCheck, GroupHost, []string{"ENABLE_HOST_CHECK"}},
	{DisableHostCheck, GroupHost, []string{"DISABLE_HOST_CHECK"}},
	{ScheduleHostCheck, GroupHost, []string{"SCHEDULE_HOST_CHECK"}},
	{ScheduleForcedHostCheck, GroupHost, []string{"SCHEDULE_FORCED_HOST_CHECK"}},
	{ScheduleHostDowntime, GroupHost, []string{"SCHEDULE_HOST_DOWNTIME"}},
	{ScheduleHostSvcDowntime, GroupHost, []string{"SCHEDULE_HOST_SVC_DOWNTIME"}},
	{DelHostDowntime, GroupHost, []string{"DEL_HOST_DOWNTIME"}},
	{DelDowntimeByHostName, GroupHost, []string{"DEL_DOWNTIME_BY_HOST_NAME"}},
	{DelDowntimeByHostgroupName, GroupHost, []string{"DEL_DOWNTIME_BY_HOSTGROUP_NAME"}},
	{DelDowntimeByStartTimeComment, GroupHost, []string{"DEL_DOWNTIME_BY_START_TIME_COMMENT"}},
	{EnableHostFlapDetection, GroupHost, []string{"ENABLE_HOST_FLAP_DETECTION"}},
	{DisableHostFlapDetection, GroupHost, []string{"DISABLE_HOST_FLAP_DETECTION"}},
	{StartObsessingOverHost, GroupHost, []string{"START_OBSESSING_OVER_HOST"}},
	{StopObsessingOverHost, GroupHost, []string{"STOP_OBSESSING_OVER_HOST"}},
	{ChangeHostEventHandler, GroupHost, []string{"CHANGE_HOST_EVENT_HANDLER"}},
	{ChangeHostCheckCommand, GroupHost, []string{"CHANGE_HOST_CHECK_COMMAND"}},
	{ChangeNormalHostCheckInterval, GroupHost, []string{"CHANGE_NORMAL_HOST_CHECK_INTERVAL"}},
	{ChangeRetryHostCheckInterval, GroupHost, []string{"CHANGE_RETRY_HOST_CHECK_INTERVAL"}},
	{ChangeMaxHostCheckAttempts, GroupHost, []string{"CHANGE_MAX_HOST_CHECK_ATTEMPTS"}},
	{ScheduleAndPropagateTriggeredHostDowntime, GroupHost, []string{"SCHEDULE_AND_PROPAGATE_TRIGGERED_HOST_DOWNTIME"}},
	{ScheduleAndPropagateHostDowntime, GroupHost, []string{"SCHEDULE_AND_PROPAGATE_HOST_DOWNTIME"}},
	{SetHostNotificationNumber, GroupHost, []string{"SET_HOST_NOTIFICATION_NUMBER"}},
	{ChangeHostCheckTimeperiod, GroupHost, []string{"CHANGE_HOST_CHECK_TIMEPERIOD"}},
	{ChangeCustomHostVar, GroupHost, []string{"CHANGE_CUSTOM_HOST_VAR"}},
	{SendCustomHostNotification, GroupHost, []string{"SEND_CUSTOM_HOST_NOTIFICATION"}},
	{ChangeHostNotificationTimeperiod, GroupHost, []string{"CHANGE_HOST_NOTIFICATION_TIMEPERIOD"}},
	{ChangeHostModattr, GroupHost, []string{"CHANGE_HOST_MODATTR"}},

	// Hostgroup commands.
	{EnableHostgroupHostNotifications, GroupHostgroup, []string{"ENABLE_HOSTGROUP_HOST_NOTIFICATIONS"}},
	{DisableHostgroupHostNotifications, GroupHostgroup, []string{"DISABLE_HOSTGROUP_HOST_NOTIFICATIONS"}},
	{EnableHostgroupSvcNotifications, GroupHostgroup, []string{"ENABLE_HOSTGROUP_SVC_NOTIFICATIONS"}},
	{DisableHostgroupSvcNotifications, GroupHostgroup, []string{"DISABLE_HOSTGROUP_SVC_NOTIFICATIONS"}},
	{EnableHostgroupHostChecks, GroupHostgroup, []string{"ENABLE_HOSTGROUP_HOST_CHECKS"}},
	{DisableHostgroupHostChecks, GroupHostgroup, []string{"DISABLE_HOSTGROUP_HOST_CHECKS"}},
	{EnableHostgroupPassiveHostChecks, GroupHostgroup, []string{"ENABLE_HOSTGROUP_PASSIVE_HOST_CHECKS"}},
	{DisableHostgroupPassiveHostChecks, GroupHostgroup, []string{"DISABLE_HOSTGROUP_PASSIVE_HOST_CHECKS"}},
	{EnableHostgroupSvcChecks, GroupHostgroup, []string{"ENABLE_HOSTGROUP_SVC_CHECKS"}},
	{DisableHostgroupSvcChecks, GroupHostgroup, []string{"DISABLE_HOSTGROUP_SVC_CHECKS"}},
	{EnableHostgroupPassiveSvcChecks, GroupHostgroup, []string{"ENABLE_HOSTGROUP_PASSIVE_SVC_CHECKS"}},
	{DisableHostgroupPassiveSvcChecks, GroupHostgroup, []string{"DISABLE_HOSTGROUP_PASSIVE_SVC_CHECKS"}},
	{ScheduleHostgroupHostDowntime, GroupHostgroup, []string{"SCHEDULE_HOSTGROUP_HOST_DOWNTIME"}},
	{ScheduleHostgroupSvcDowntime, GroupHostgroup, []string{"SCHEDULE_HOSTGROUP_SVC_DOWNTIME"}},

	// Service commands.
	{AddSvcComment, GroupService, []string{"ADD_SVC_COMMENT"}},
	{DelSvcComment, GroupService, []string{"DEL_SVC_COMMENT"}},
	{DelAllSvcComments, GroupService, []string{"DEL_ALL_SVC_COMMENTS"}},
	{ScheduleSvcCheck, GroupService, []string{"SCHEDULE_SVC_CHECK"}},
	{ScheduleForcedSvcCheck, GroupService, []string{"SCHEDULE_FORCED_SVC_CHECK"}},
	{EnableSvcCheck, GroupService, []string{"ENABLE_SVC_CHECK"}},
	{DisableSvcCheck, GroupService, []string{"DISABLE_SVC_CHECK"}},
	{EnablePassiveSvcChecks, GroupService, []string{"ENABLE_PASSIVE_SVC_CHECKS"}},
	{DisablePassiveSvcChecks, GroupService, []string{"DISABLE_PASSIVE_SVC_CHECKS"}},
	{DelaySvcNotification, GroupService, []string{"DELAY_SVC_NOTIFICATION"}},
	{EnableSvcNotifications, GroupService, []string{"ENABLE_SVC_NOTIFICATIONS"}},
	{DisableSvcNotifications, GroupService, []string{"DISABLE_SVC_NOTIFICATIONS"}},
	{ProcessServiceCheckResult, GroupService, []string{"PROCESS_SERVICE_CHECK_RESULT"}},
	{ProcessHostCheckResult, GroupService, []string{"PROCESS_HOST_CHECK_RESULT"}},
	{EnableSvcEventHandler, GroupService, []string{"ENABLE_SVC_EVENT_HANDLER"}},
	{DisableSvcEventHandler, GroupService, []string{"DISABLE_SVC_EVENT_HANDLER"}},
	{EnableSvcFlapDetection, GroupService, []string{"ENABLE_SVC_FLAP_DETECTION"}},
	{DisableSvcFlapDetection, GroupService, []string{"DISABLE_SVC_FLAP_DETECTION"}},
	{ScheduleSvcDowntime, GroupService, []string{"SCHEDULE_SVC_DOWNTIME"}},
	{DelSvcDowntime, GroupService, []string{"DEL_SVC_DOWNTIME"}},
	{AcknowledgeSvcProblem, GroupService, []string{"ACKNOWLEDGE_SVC_PROBLEM"}},
	{AcknowledgeSvcProblemExpire, GroupService, []string{"ACKNOWLEDGE_SVC_PROBLEM_EXPIRE"}},
	{RemoveSvcAcknowledgement, GroupService, []string{"REMOVE_SVC_ACKNOWLEDGEMENT"}},
	{StartObsessingOverSvc, GroupService, []string{"START_OBSESSING_OVER_SVC"}},
	{StopObsessingOverSvc, GroupService, []string{"STOP_OBSESSING_OVER_SVC"}},
	{ChangeSvcEventHandler, GroupService, []string{"CHANGE_SVC_EVENT_HANDLER"}},
	{ChangeSvcCheckCommand, GroupService, []string{"CHANGE_SVC_CHECK_COMMAND"}},
	{ChangeNormalSvcCheckInterval, GroupService, []string{"CHANGE_NORMAL_SVC_CHECK_INTERVAL"}},
	{ChangeRetrySvcCheckInterval, GroupService, []string{"CHANGE_RETRY_SVC_CHECK_INTERVAL"}},
	{ChangeMaxSvcCheckAttempts, GroupService, []string{"CHANGE_MAX_SVC_CHECK_ATTEMPTS"}},
	{SetSvcNotificationNumber, GroupService, []string{"SET_SVC_NOTIFICATION_NUMBER"}},
	{ChangeSvcCheckTimeperiod, GroupService, []string{"CHANGE_SVC_CHECK_TIMEPERIOD"}},
	{ChangeCustomSvcVar, GroupService, []string{"CHANGE_CUSTOM_SVC_VAR"}},
	{ChangeCustomContactVar, GroupService, []string{"CHANGE_CUSTOM_CONTACT_VAR"}},
	{SendCustomSvcNotification, GroupService, []string{"SEND_CUSTOM_SVC_NOTIFICATION"}},
	{ChangeSvcNotificationTimeperiod, GroupService, []string{"CHANGE_SVC_NOTIFICATION_TIMEPERIOD"}},
	{ChangeSvcModattr, GroupService, []string{"CHANGE_SVC_MODATTR"}},

	// Servicegroup commands.
	{EnableServicegroupHostNotifications, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_HOST_NOTIFICATIONS"}},
	{DisableServicegroupHostNotifications, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_HOST_NOTIFICATIONS"}},
	{EnableServicegroupSvcNotifications, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_SVC_NOTIFICATIONS"}},
	{DisableServicegroupSvcNotifications, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_SVC_NOTIFICATIONS"}},
	{EnableServicegroupHostChecks, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_HOST_CHECKS"}},
	{DisableServicegroupHostChecks, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_HOST_CHECKS"}},
	{EnableServicegroupPassiveHostChecks, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_PASSIVE_HOST_CHECKS"}},
	{DisableServicegroupPassiveHostChecks, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_PASSIVE_HOST_CHECKS"}},
	{EnableServicegroupSvcChecks, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_SVC_CHECKS"}},
	{DisableServicegroupSvcChecks, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_SVC_CHECKS"}},
	{EnableServicegroupPassiveSvcChecks, GroupServicegroup, []string{"ENABLE_SERVICEGROUP_PASSIVE_SVC_CHECKS"}},
	{DisableServicegroupPassiveSvcChecks, GroupServicegroup, []string{"DISABLE_SERVICEGROUP_PASSIVE_SVC_CHECKS"}},
	{ScheduleServicegroupHostDowntime, GroupServicegroup, []string{"SCHEDULE_SERVICEGROUP_HOST_DOWNTIME"}},
	{ScheduleServicegroupSvcDowntime, GroupServicegroup, []string{"SCHEDULE_SERVICEGROUP_SVC_DOWNTIME"}},

	// Contact commands.
	{EnableContactHostNotifications, GroupContact, []string{"ENABLE_CONTACT_HOST_NOTIFICATIONS"}},
	{DisableContactHostNotifications, GroupContact, []string{"DISABLE_CONTACT_HOST_NOTIFICATIONS"}},
	{EnableContactSvcNotifications, GroupContact, []string{"ENABLE_CONTACT_SVC_NOTIFICATIONS"}},
	{DisableContactSvcNotifications, GroupContact, []string{"DISABLE_CONTACT_SVC_NOTIFICATIONS"}},
	{ChangeContactHostNotificationTimeperiod, GroupContact, []string{"CHANGE_CONTACT_HOST_NOTIFICATION_TIMEPERIOD"}},
	{ChangeContactSvcNotificationTimeperiod, GroupContact, []string{"CHANGE_CONTACT_SVC_NOTIFICATION_TIMEPERIOD"}},
	{ChangeContactModattr, GroupContact, []string{"CHANGE_CONTACT_MODATTR"}},
	{ChangeContactModhattr, GroupContact, []string{"CHANGE_CONTACT_MODHATTR"}},
	{ChangeContactModsattr, GroupContact, []string{"CHANGE_CONTACT_MODSATTR"}},

	// Contactgroup commands.
	{EnableContactgroupHostNotifications, GroupContactgroup, []string{"ENABLE_CONTACTGROUP_HOST_NOTIFICATIONS"}},
	{DisableContactgroupHostNotifications, GroupContactgroup, []string{"DISABLE_CONTACTGROUP_HOST_NOTIFICATIONS"}},
	{EnableContactgroupSvcNotifications, GroupContactgroup, []string{"ENABLE_CONTACTGROUP_SVC_NOTIFICATIONS"}},
	{DisableContactgroupSvcNotifications, GroupContactgroup, []string{"DISABLE_CONTACTGROUP_SVC_NOTIFICATIONS"}},

	// Miscellaneous commands.
	{ProcessFile, GroupMisc, []string{"PROCESS_FILE"}},
}

// Built once at package initialisation and never written afterwards, so
// concurrent readers need no locking.
var (
	table  map[string]Kind
	byKind map[Kind]*Definition
)

func init() {
	table = make(map[string]Kind, len(definitions)+4)
	byKind = make(map[Kind]*Definition, len(definitions))
	for i := range definitions {
		d := &definitions[i]
		byKind[d.Kind] = d
		for _, name := range d.Names {
			table[name] = d.Kind
		}
	}
}

// Lookup returns the kind registered for identifier. The comparison is exact
// and case-sensitive; the custom prefix rule is not applied.
func Lookup(identifier string) (Kind, bool) {
	k, ok := table[identifier]
	return k, ok
}

// Classify maps identifier to its command kind. Exact table matches win;
// otherwise identifiers starting with CustomPrefix are Custom and everything
// else is Unknown.
func Classify(identifier string) Kind {
	if k, ok := table[identifier]; ok {
		return k
	}
	if strings.HasPrefix(identifier, CustomPrefix) {
		return Custom
	}
	return Unknown
}

// Definitions returns a copy of the command table in declaration order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	for i, d := range definitions {
		out[i] = Definition{
			Kind:  d.Kind,
			Group: d.Group,
			Names: append([]string(nil), d.Names...),
		}
	}
	return out
}

// Identifiers returns every identifier in the table, synonyms included,
// sorted alphabetically.
func Identifiers() []string {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

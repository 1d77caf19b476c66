// Package schema resolves entity types and fields to predicate data types and
// display names.
//
// Static is an in-memory implementation loaded from YAML:
//
//	entity_types:
//	  Task:
//	    display_name: Task
//	    fields:
//	      content: {data_type: text, display_name: Task Name}
//	      sg_status_list: {data_type: status_list, display_name: Status}
//	projects:
//	  85:
//	    Task:
//	      fields:
//	        sg_status_list: {data_type: status_list, display_name: Phase}
package schema
